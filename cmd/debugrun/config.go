// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"debugrun/internal/config"

	"github.com/spf13/cobra"
)

const (
	dumpFormatCUE  = "cue"
	dumpFormatTOML = "toml"
)

// newConfigCommand creates the `debugrun config` command tree.
// Subcommands that read configuration use the App's config provider.
func newConfigCommand(app *App, opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage debugrun configuration",
		Long: `Manage debugrun configuration.

Configuration is stored in:
  - Linux: ~/.config/debugrun/config.cue
  - macOS: ~/Library/Application Support/debugrun/config.cue
  - Windows: %APPDATA%\debugrun\config.cue

When no such file exists, ./debugrun.cue is used if present.
DEBUGRUN_* environment variables override file values, e.g.
DEBUGRUN_GEOMETRY or DEBUGRUN_UI_VERBOSE.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, _, err := loadConfig(cmd, app, opts)
			if err != nil {
				return err
			}
			showConfig(app.stdout, loaded)
			return nil
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE or TOML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, _, err := loadConfig(cmd, app, opts)
			if err != nil {
				return err
			}
			return dumpConfig(app.stdout, loaded.Config, format)
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", dumpFormatCUE, "output format (cue, toml)")
	cfgCmd.AddCommand(dumpCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app.stdout, opts.configPath)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app.stdout)
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, loaded *config.Loaded) {
	cfg := loaded.Config
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if loaded.Path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), loaded.Path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = SubtitleStyle.Render("(directory of the debugrun binary)")
	} else {
		basePath = valueStyle.Render(basePath)
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("base_path"), basePath)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("executable"), valueStyle.Render(cfg.Executable))
	writeList(w, "plugin_dirs", cfg.PluginDirs)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("lib_path"), valueStyle.Render(cfg.LibPath))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("geometry"), valueStyle.Render(cfg.Geometry))
	writeList(w, "plugins", cfg.Plugins)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("debug_plugin_loading"), valueStyle.Render(fmt.Sprintf("%v", cfg.DebugPluginLoading)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("nevents"), valueStyle.Render(cfg.NEvents))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("report_on_failure"), valueStyle.Render(fmt.Sprintf("%v", cfg.ReportOnFailure)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
}

func writeList(w io.Writer, key string, values []string) {
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render(key))
	if len(values) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
		return
	}
	for _, v := range values {
		fmt.Fprintf(w, "  - %s\n", SuccessStyle.Render(v))
	}
}

func dumpConfig(w io.Writer, cfg *config.Config, format string) error {
	switch strings.ToLower(format) {
	case dumpFormatCUE:
		fmt.Fprint(w, config.GenerateCUE(cfg))
		return nil
	case dumpFormatTOML:
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	default:
		return &ExitError{Code: ExitCodeUsage, Err: fmt.Errorf("unknown format %q (valid: %s, %s)", format, dumpFormatCUE, dumpFormatTOML)}
	}
}

func initConfig(w io.Writer, path string) error {
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(""); err != nil {
			return err
		}
	}

	written, err := config.CreateDefaultConfig(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !written {
		fmt.Fprintf(w, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(w, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath(w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.DefaultConfigPath(cfgDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(w, "Config file: %s\n", cfgPath)
	fmt.Fprintf(w, "Local config file: %s\n", config.LocalConfigFileName)
	return nil
}
