// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"debugrun/internal/issue"
	"debugrun/internal/jana"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose    bool
	configPath string
}

// newRootCommand builds the command tree. passthrough holds the -P/-p tokens
// that were removed from the command line before Cobra sees it.
func newRootCommand(app *App, passthrough []string) *cobra.Command {
	opts := &rootOptions{}
	flags := &runFlags{}

	root := &cobra.Command{
		Use:   "debugrun <input_file> <output_base_name>",
		Short: "Run eicrecon with a standard set of debug flags",
		Long: TitleStyle.Render("debugrun") + SubtitleStyle.Render(" - Run eicrecon with a standard set of debug flags") + `

debugrun launches a locally built eicrecon on one input file, with the
dump_flags plugin, plugin loading diagnostics and the output files named
after a common base name:

  <output_base_name>.tree.edm4eic.root   reconstructed output tree
  <output_base_name>.ana.root            monitoring histograms
  <output_base_name>.flags.json          effective parameters

The build's plugin directory is prepended to JANA_PLUGIN_PATH for the
child only. Any argument starting with -P or -p is passed to eicrecon
unchanged, after the input file.

` + SubtitleStyle.Render("Examples:") + `
  debugrun input.edm4hep.root run1
  debugrun input.edm4hep.root run1 -n 100 -Pjana:timeout=0
  debugrun --dry-run input.edm4hep.root run1`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecon(cmd, app, opts, flags, args, passthrough)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.SetIn(app.stdin)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)
	root.SetFlagErrorFunc(usageError)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/debugrun/config.cue)")
	flags.register(root)

	root.AddCommand(newConfigCommand(app, opts))

	return root
}

// prepareRoot splits the passthrough tokens off args and returns a root
// command ready to execute the remainder.
func prepareRoot(app *App, args []string) *cobra.Command {
	passthrough, rest := jana.SplitPassthrough(args)
	root := newRootCommand(app, passthrough)
	root.SetArgs(rest)
	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the command tree against os.Args and exits the process.
// This is called by main.main().
func Execute() {
	root := prepareRoot(NewApp(Dependencies{}), os.Args[1:])

	// Pass version via fang.WithVersion() since fang overrides root.Version
	err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	)
	if err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// errorHandler prints errors that were not already reported by the handler
// that returned them.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// usageArgs wraps a positional argument validator so that failures print
// the usage text and exit with the usage exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

// usageError prints the command's usage to stderr and wraps err with the
// usage exit code.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return &ExitError{Code: ExitCodeUsage, Err: err}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
