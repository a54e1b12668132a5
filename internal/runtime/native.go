// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

var (
	// ErrEmptyCommand is returned when the argument vector is empty.
	ErrEmptyCommand = errors.New("command vector is empty")
	// ErrTTYUnsupported is returned when a pseudo-terminal is requested on a
	// platform that cannot provide one.
	ErrTTYUnsupported = errors.New("pseudo-terminal execution is not supported on this platform")
)

type (
	// ExecutionContext describes one child process invocation.
	ExecutionContext struct {
		// Context cancels the child when done. Nil means context.Background().
		Context context.Context
		// Argv is the full argument vector; Argv[0] is the executable path.
		Argv []string
		// Env is the complete child environment as "KEY=VALUE" entries.
		// Nil inherits the orchestrator's environment.
		Env []string
		// WorkDir is the child's working directory. Empty means the current one.
		WorkDir string

		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer

		// TTY attaches the child to a pseudo-terminal whose output is copied to Stdout.
		TTY bool
	}

	// Executor runs an ExecutionContext to completion.
	Executor interface {
		Execute(ctx *ExecutionContext) *Result
	}

	// NativeRuntime executes the argument vector directly, without a shell.
	NativeRuntime struct {
		// Clock supplies start and finish timestamps. Nil uses RealClock.
		Clock Clock
	}
)

// NewNativeRuntime creates a native runtime backed by the system clock.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{Clock: RealClock{}}
}

// Name returns the runtime name
func (r *NativeRuntime) Name() string {
	return "native"
}

// Validate checks if a command can be executed
func (r *NativeRuntime) Validate(ctx *ExecutionContext) error {
	if len(ctx.Argv) == 0 || ctx.Argv[0] == "" {
		return ErrEmptyCommand
	}
	return nil
}

// Execute starts the child, blocks until it exits and returns its Result.
// Timestamps are recorded even when the child fails to start.
func (r *NativeRuntime) Execute(ctx *ExecutionContext) *Result {
	if err := r.Validate(ctx); err != nil {
		return NewErrorResult(ExitFailure, err)
	}

	runCtx := ctx.Context
	if runCtx == nil {
		runCtx = context.Background()
	}

	cmd := exec.CommandContext(runCtx, ctx.Argv[0], ctx.Argv[1:]...)
	cmd.Env = ctx.Env
	cmd.Dir = ctx.WorkDir

	clock := r.clock()
	started := clock.Now()

	var err error
	if ctx.TTY {
		err = runWithPTY(cmd, ctx.Stdout)
	} else {
		cmd.Stdin = ctx.Stdin
		cmd.Stdout = ctx.Stdout
		cmd.Stderr = ctx.Stderr
		err = cmd.Run()
	}

	result := resultFromWaitError(err)
	result.StartedAt = started
	result.FinishedAt = clock.Now()
	return result
}

func (r *NativeRuntime) clock() Clock {
	if r.Clock == nil {
		return RealClock{}
	}
	return r.Clock
}
