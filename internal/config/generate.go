// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// debugrun configuration file\n")
	sb.WriteString("// Relative paths resolve against base_path (empty: directory of the debugrun binary).\n\n")

	fmt.Fprintf(&sb, "base_path: %q\n", cfg.BasePath)
	fmt.Fprintf(&sb, "executable: %q\n", cfg.Executable)
	writeCUEList(&sb, "plugin_dirs", cfg.PluginDirs)
	fmt.Fprintf(&sb, "lib_path: %q\n", cfg.LibPath)

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "geometry: %q\n", cfg.Geometry)
	writeCUEList(&sb, "plugins", cfg.Plugins)
	fmt.Fprintf(&sb, "debug_plugin_loading: %v\n", cfg.DebugPluginLoading)
	fmt.Fprintf(&sb, "nevents: %q\n", cfg.NEvents)
	fmt.Fprintf(&sb, "report_on_failure: %v\n", cfg.ReportOnFailure)

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")

	return sb.String()
}

func writeCUEList(sb *strings.Builder, name string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(sb, "%s: []\n", name)
		return
	}
	fmt.Fprintf(sb, "%s: [\n", name)
	for _, v := range values {
		fmt.Fprintf(sb, "\t%q,\n", v)
	}
	sb.WriteString("]\n")
}

// GenerateTOML renders the configuration as TOML, using the same keys as the CUE file.
func GenerateTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return string(data), nil
}
