// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"debugrun/internal/config"
	"debugrun/internal/issue"
	"debugrun/internal/recon"
	"debugrun/internal/runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runFlags are the root command's launch flags. Each one overrides the
// matching config value only when given on the command line.
type runFlags struct {
	nevents       string
	basePath      string
	executable    string
	pluginDirs    []string
	libPath       string
	geometry      string
	dryRun        bool
	timeOnFailure bool
	tty           bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.nevents, "nevents", "n", config.DefaultNEvents, "number of events to process")
	fs.StringVar(&f.basePath, "base-path", "", "repository root that relative paths resolve against (default: directory of the debugrun binary)")
	fs.StringVar(&f.executable, "executable", config.DefaultExecutable, "eicrecon executable")
	fs.StringArrayVar(&f.pluginDirs, "plugin-dir", []string{config.DefaultPluginDir}, "directory prepended to JANA_PLUGIN_PATH (repeatable)")
	fs.StringVar(&f.libPath, "lib-path", config.DefaultLibPath, "directory prepended to LD_LIBRARY_PATH (empty to skip)")
	fs.StringVar(&f.geometry, "geometry", config.DefaultGeometry, "dd4hep geometry description")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the launch without starting eicrecon")
	fs.BoolVar(&f.timeOnFailure, "time-on-failure", false, "print the timing report when eicrecon fails")
	fs.BoolVar(&f.tty, "tty", false, "run eicrecon attached to a pseudo-terminal")
}

// apply copies explicitly set flags over cfg.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("nevents") {
		cfg.NEvents = f.nevents
	}
	if fs.Changed("base-path") {
		cfg.BasePath = f.basePath
	}
	if fs.Changed("executable") {
		cfg.Executable = f.executable
	}
	if fs.Changed("plugin-dir") {
		cfg.PluginDirs = f.pluginDirs
	}
	if fs.Changed("lib-path") {
		cfg.LibPath = f.libPath
	}
	if fs.Changed("geometry") {
		cfg.Geometry = f.geometry
	}
	if fs.Changed("time-on-failure") {
		cfg.ReportOnFailure = f.timeOnFailure
	}
}

func runRecon(cmd *cobra.Command, app *App, opts *rootOptions, flags *runFlags, args, passthrough []string) error {
	ctx := cmd.Context()

	loaded, logger, err := loadConfig(cmd, app, opts)
	if err != nil {
		return err
	}
	cfg := loaded.Config
	flags.apply(cmd, cfg)

	req, err := recon.NewRequest(args[0], args[1], cfg.NEvents, passthrough)
	if err != nil {
		renderIssue(app.stderr, issue.InvalidArgumentsId, cfg.UI.ColorScheme)
		return usageError(cmd, err)
	}

	layout, err := recon.ResolveLayout(recon.LayoutOptions{
		BasePath:      cfg.BasePath,
		Executable:    cfg.Executable,
		PluginDirs:    cfg.PluginDirs,
		LibraryPath:   cfg.LibPath,
		ExecutableDir: app.ExecutableDir,
	})
	if err != nil {
		return &ExitError{Code: runtime.ExitFailure, Err: err}
	}
	logger.Debug("resolved layout",
		"base", layout.BasePath,
		"executable", layout.Executable,
		"plugin_dirs", layout.PluginDirs,
		"lib_path", layout.LibraryPath)

	orchestrator := &recon.Orchestrator{
		Executor: app.Runtime,
		Environ:  app.Environ,
		Stdout:   app.stdout,
		Stderr:   app.stderr,
		Stdin:    app.stdin,
		Logger:   logger,
	}
	result, err := orchestrator.Run(ctx, recon.Plan{
		Request: req,
		Layout:  layout,
		Options: recon.Options{
			Plugins:            cfg.Plugins,
			Geometry:           cfg.Geometry,
			DebugPluginLoading: cfg.DebugPluginLoading,
		},
		DryRun:        flags.dryRun,
		TimeOnFailure: cfg.ReportOnFailure,
		TTY:           flags.tty,
	})
	if err != nil {
		return &ExitError{Code: runtime.ExitFailure, Err: err}
	}
	if result.Success() {
		return nil
	}

	issueID, msg := classifyRunFailure(layout, result, isVerbose(cmd, opts, cfg))
	renderIssue(app.stderr, issueID, cfg.UI.ColorScheme)
	fmt.Fprint(app.stderr, msg)
	return &ExitError{Code: result.ExitCode}
}

// loadConfig loads the configuration and builds the logger. Load failures
// are reported to stderr and returned as an already-reported ExitError.
func loadConfig(cmd *cobra.Command, app *App, opts *rootOptions) (*config.Loaded, *log.Logger, error) {
	loaded, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		renderIssue(app.stderr, issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		fmt.Fprintf(app.stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, opts.verbose))
		return nil, nil, &ExitError{Code: runtime.ExitFailure}
	}

	logger := newLogger(app.stderr, isVerbose(cmd, opts, loaded.Config))
	if loaded.Path != "" {
		logger.Debug("configuration loaded", "path", loaded.Path)
	} else {
		logger.Debug("no configuration file found, using defaults")
	}
	return loaded, logger, nil
}

// isVerbose prefers an explicit --verbose over ui.verbose.
func isVerbose(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) bool {
	if cmd.Flags().Changed("verbose") {
		return opts.verbose
	}
	return cfg.UI.Verbose
}
