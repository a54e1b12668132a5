// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"debugrun/internal/config"
	"debugrun/internal/recon"
	"debugrun/internal/runtime"
)

type (
	// App wires CLI services and shared dependencies. All Cobra handlers
	// receive an App reference instead of reaching for process globals.
	App struct {
		Config        config.Provider
		Runtime       runtime.Executor
		Environ       func() []string
		ExecutableDir func() (string, error)
		stdin         io.Reader
		stdout        io.Writer
		stderr        io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		// Runtime launches eicrecon.
		Runtime runtime.Executor
		// Environ is the environment snapshot handed to eicrecon.
		Environ func() []string
		// ExecutableDir locates the default base path.
		ExecutableDir func() (string, error)
		Stdin         io.Reader
		Stdout        io.Writer
		Stderr        io.Writer
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:        deps.Config,
		Runtime:       deps.Runtime,
		Environ:       deps.Environ,
		ExecutableDir: deps.ExecutableDir,
		stdin:         deps.Stdin,
		stdout:        deps.Stdout,
		stderr:        deps.Stderr,
	}

	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Runtime == nil {
		app.Runtime = runtime.NewNativeRuntime()
	}
	if app.Environ == nil {
		app.Environ = runtime.HostEnviron
	}
	if app.ExecutableDir == nil {
		app.ExecutableDir = recon.ExecutableDir
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}

	return app
}
