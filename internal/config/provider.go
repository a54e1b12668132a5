// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath string
		// ConfigDirPath overrides the config directory lookup when set.
		ConfigDirPath string
		// WorkDir is searched for debugrun.cue. Empty means the current directory.
		WorkDir string
	}

	// Loaded is a configuration together with the file it came from.
	Loaded struct {
		Config *Config
		// Path is the config file that was merged, empty when only defaults apply.
		Path string
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Loaded, error)
	}

	fileProvider struct{}

	// StaticProvider always returns the same configuration. Useful in tests
	// and for embedding debugrun with a fixed layout.
	StaticProvider struct {
		Config *Config
		Err    error
	}
)

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Loaded, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &Loaded{Config: cfg, Path: path}, nil
}

// Load returns a copy of the static configuration, or DefaultConfig when unset.
func (p *StaticProvider) Load(_ context.Context, _ LoadOptions) (*Loaded, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Config == nil {
		return &Loaded{Config: DefaultConfig()}, nil
	}
	cfg := *p.Config
	cfg.PluginDirs = append([]string(nil), p.Config.PluginDirs...)
	cfg.Plugins = append([]string(nil), p.Config.Plugins...)
	return &Loaded{Config: &cfg}, nil
}
