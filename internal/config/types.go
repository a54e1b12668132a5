// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultExecutable is the eicrecon binary of a debug CMake build, relative to the base path.
	DefaultExecutable = "cmake-build-debug/eicrecon/src/utilities/eicrecon/eicrecon"
	// DefaultPluginDir holds the plugins installed by that build, relative to the base path.
	DefaultPluginDir = "lib/EICrecon/plugins"
	// DefaultLibPath is the IRT library directory prepended to LD_LIBRARY_PATH.
	DefaultLibPath = "/home/romanov/eic/soft/irt/irt-v1.0.3/lib"
	// DefaultGeometry is the ePIC detector description.
	DefaultGeometry = "epic_brycecanyon.xml"
	// DefaultPlugin dumps the effective parameters to <base>.flags.json.
	DefaultPlugin = "dump_flags"
	// DefaultNEvents is the default number of events to process.
	DefaultNEvents = "10"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError reports a field whose value cannot be used.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		Field  string
		Reason string
	}

	// UIConfig holds output preferences.
	UIConfig struct {
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
		// ColorScheme selects the glamour style for issue pages.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
	}

	// Config is the effective debugrun configuration.
	Config struct {
		// BasePath is the directory relative layout entries resolve against.
		// Empty means the directory containing the debugrun binary.
		BasePath string `json:"base_path" mapstructure:"base_path" toml:"base_path"`
		// Executable is the eicrecon binary path.
		Executable string `json:"executable" mapstructure:"executable" toml:"executable"`
		// PluginDirs are prepended to JANA_PLUGIN_PATH in order.
		PluginDirs []string `json:"plugin_dirs" mapstructure:"plugin_dirs" toml:"plugin_dirs"`
		// LibPath is prepended to LD_LIBRARY_PATH. Empty disables the overlay.
		LibPath string `json:"lib_path" mapstructure:"lib_path" toml:"lib_path"`
		// Geometry is the dd4hep XML description.
		Geometry string `json:"geometry" mapstructure:"geometry" toml:"geometry"`
		// Plugins are the JANA plugins to load.
		Plugins []string `json:"plugins" mapstructure:"plugins" toml:"plugins"`
		// DebugPluginLoading toggles -Pjana:debug_plugin_loading.
		DebugPluginLoading bool `json:"debug_plugin_loading" mapstructure:"debug_plugin_loading" toml:"debug_plugin_loading"`
		// NEvents is the default event count.
		NEvents string `json:"nevents" mapstructure:"nevents" toml:"nevents"`
		// ReportOnFailure prints the timing report when eicrecon fails.
		ReportOnFailure bool `json:"report_on_failure" mapstructure:"report_on_failure" toml:"report_on_failure"`
		// UI holds output preferences.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Validate returns an error if the ColorScheme is not one of the defined schemes.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// GlamourStyle maps the scheme to a glamour style name.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeLight:
		return "light"
	case ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks constraints that also apply to values coming from
// environment overrides, which bypass the CUE schema.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Executable) == "" {
		return &InvalidConfigError{Field: "executable", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.Geometry) == "" {
		return &InvalidConfigError{Field: "geometry", Reason: "must not be empty"}
	}
	for i, dir := range c.PluginDirs {
		if strings.TrimSpace(dir) == "" {
			return &InvalidConfigError{Field: fmt.Sprintf("plugin_dirs[%d]", i), Reason: "must not be empty"}
		}
	}
	if _, err := strconv.ParseUint(c.NEvents, 10, 64); err != nil {
		return &InvalidConfigError{Field: "nevents", Reason: fmt.Sprintf("%q is not a non-negative integer", c.NEvents)}
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BasePath:           "",
		Executable:         DefaultExecutable,
		PluginDirs:         []string{DefaultPluginDir},
		LibPath:            DefaultLibPath,
		Geometry:           DefaultGeometry,
		Plugins:            []string{DefaultPlugin},
		DebugPluginLoading: true,
		NEvents:            DefaultNEvents,
		ReportOnFailure:    false,
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}
