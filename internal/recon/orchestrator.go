// SPDX-License-Identifier: MPL-2.0

package recon

import (
	"context"
	"fmt"
	"io"
	"os"

	"debugrun/internal/jana"
	"debugrun/internal/runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// Plan is everything needed for one launch.
	Plan struct {
		Request Request
		Layout  Layout
		Options Options
		// DryRun prints the launch without starting eicrecon.
		DryRun bool
		// TimeOnFailure prints the timing report when eicrecon fails.
		TimeOnFailure bool
		// TTY attaches eicrecon to a pseudo-terminal.
		TTY bool
	}

	// Orchestrator runs a Plan. Zero-value fields fall back to the host
	// process: os.Environ, os.Stdout, os.Stderr, os.Stdin and a native runtime.
	Orchestrator struct {
		Executor runtime.Executor
		// Environ returns the environment snapshot the overlay is computed
		// from and the child inherits.
		Environ func() []string
		Stdout  io.Writer
		Stderr  io.Writer
		Stdin   io.Reader
		Logger  *log.Logger
	}
)

// Run prints the layout report, launches eicrecon with the overlaid
// environment and prints the timing report. A child failure is reported
// through the returned Result; the error is reserved for failures before launch.
func (o *Orchestrator) Run(ctx context.Context, plan Plan) (*runtime.Result, error) {
	stdout := o.stdout()
	logger := o.logger()
	environ := o.environ()

	overlay := plan.Layout.Overlay(environ)
	PrintLayout(stdout, plan.Layout, overlay)

	for _, name := range overlay.Names() {
		logger.Debug("environment overlay", "name", name, "value", overlay.Get(name))
	}

	params := Params(plan.Request, plan.Options)
	overrides := jana.Overrides(plan.Request.Passthrough(), params)
	for _, name := range sortedKeys(overrides) {
		logger.Debug("passthrough overrides built-in parameter", "param", name, "token", overrides[name])
	}

	cmd := BuildCommand(plan.Layout.Executable, plan.Request, plan.Options)

	if plan.DryRun {
		line, err := dryRunLine(overlay, cmd)
		if err != nil {
			return nil, fmt.Errorf("failed to render command line: %w", err)
		}
		fmt.Fprintln(stdout, "Dry run, eicrecon not started:")
		fmt.Fprintln(stdout, line)
		return runtime.NewSuccessResult(), nil
	}

	fmt.Fprintln(stdout, cmd.String())

	result := o.executor().Execute(&runtime.ExecutionContext{
		Context: ctx,
		Argv:    cmd.Args(),
		Env:     overlay.Apply(environ),
		Stdin:   o.stdin(),
		Stdout:  stdout,
		Stderr:  o.stderr(),
		TTY:     plan.TTY,
	})

	logger.Debug("eicrecon finished", "exit_code", result.ExitCode, "elapsed", result.Elapsed(), "error", result.Error)

	if result.Success() || plan.TimeOnFailure {
		PrintTiming(stdout, result)
	}
	return result, nil
}

// dryRunLine renders the overlay assignments and the command as one bash line.
func dryRunLine(overlay *runtime.EnvOverlay, cmd Command) (string, error) {
	line := ""
	for _, name := range overlay.Names() {
		value, err := syntax.Quote(overlay.Get(name), syntax.LangBash)
		if err != nil {
			return "", err
		}
		line += name + "=" + value + " "
	}
	shell, err := cmd.ShellString()
	if err != nil {
		return "", err
	}
	return line + shell, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (o *Orchestrator) executor() runtime.Executor {
	if o.Executor == nil {
		return runtime.NewNativeRuntime()
	}
	return o.Executor
}

func (o *Orchestrator) environ() []string {
	if o.Environ == nil {
		return runtime.HostEnviron()
	}
	return o.Environ()
}

func (o *Orchestrator) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o *Orchestrator) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

func (o *Orchestrator) stdin() io.Reader {
	if o.Stdin == nil {
		return os.Stdin
	}
	return o.Stdin
}

func (o *Orchestrator) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}
