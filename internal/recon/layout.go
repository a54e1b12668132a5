// SPDX-License-Identifier: MPL-2.0

package recon

import (
	"fmt"
	"os"
	"path/filepath"

	"debugrun/internal/runtime"
)

type (
	// LayoutOptions describes where the eicrecon build lives. Relative
	// entries resolve against BasePath.
	LayoutOptions struct {
		// BasePath is the repository root. Empty means the directory
		// returned by ExecutableDir.
		BasePath string
		// Executable is the eicrecon binary.
		Executable string
		// PluginDirs are prepended to JANA_PLUGIN_PATH in order.
		PluginDirs []string
		// LibraryPath is prepended to LD_LIBRARY_PATH. Empty skips it.
		LibraryPath string
		// ExecutableDir locates the default base path. Nil means the
		// directory of the running binary.
		ExecutableDir func() (string, error)
	}

	// Layout is a resolved LayoutOptions. All paths are absolute.
	Layout struct {
		BasePath    string
		Executable  string
		PluginDirs  []string
		LibraryPath string
	}
)

// ResolveLayout resolves the base path and joins every relative entry to it.
func ResolveLayout(opts LayoutOptions) (Layout, error) {
	base := opts.BasePath
	if base == "" {
		dirFn := opts.ExecutableDir
		if dirFn == nil {
			dirFn = ExecutableDir
		}
		dir, err := dirFn()
		if err != nil {
			return Layout{}, fmt.Errorf("failed to locate base path: %w", err)
		}
		base = dir
	}

	base, err := filepath.Abs(base)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to resolve base path %q: %w", base, err)
	}

	layout := Layout{
		BasePath:   base,
		Executable: resolveUnder(base, opts.Executable),
		PluginDirs: make([]string, 0, len(opts.PluginDirs)),
	}
	for _, dir := range opts.PluginDirs {
		layout.PluginDirs = append(layout.PluginDirs, resolveUnder(base, dir))
	}
	if opts.LibraryPath != "" {
		layout.LibraryPath = resolveUnder(base, opts.LibraryPath)
	}

	return layout, nil
}

// ExecutableDir returns the directory containing the running binary.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// ExecutableExists reports whether anything exists at the executable path.
func (l Layout) ExecutableExists() bool {
	_, err := os.Stat(l.Executable)
	return err == nil
}

// Overlay computes the child's search-path variables from environ.
// Plugin dirs are prepended one at a time, so the last listed dir ends up
// first. The library path is only overlaid when set.
func (l Layout) Overlay(environ []string) *runtime.EnvOverlay {
	overlay := runtime.NewEnvOverlay(environ)
	overlay.PrependPaths(runtime.PluginPathVar, l.PluginDirs...)
	if l.LibraryPath != "" {
		overlay.PrependPaths(runtime.LibraryPathVar, l.LibraryPath)
	}
	return overlay
}

func resolveUnder(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
