// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"os/exec"
	"time"
)

// Result is the outcome of one child process run.
type Result struct {
	// ExitCode is the child's exit status, or ExitFailure when it could not run.
	ExitCode ExitCode
	// Error is set when the child could not be started or did not exit normally.
	// A plain non-zero exit leaves Error nil.
	Error error
	// StartedAt is taken immediately before the child is started.
	StartedAt time.Time
	// FinishedAt is taken after the child has been waited for.
	FinishedAt time.Time
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// Success reports whether the child exited with status 0.
func (r *Result) Success() bool {
	return r.Error == nil && r.ExitCode.IsSuccess()
}

// Elapsed returns the wall-clock duration of the run. It is never negative.
func (r *Result) Elapsed() time.Duration {
	d := r.FinishedAt.Sub(r.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// resultFromWaitError maps the error returned by exec.Cmd.Run/Wait to a Result.
func resultFromWaitError(err error) *Result {
	if err == nil {
		return NewSuccessResult()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := ExitCode(exitErr.ExitCode())
		if code.Validate() != nil {
			// Terminated by a signal; ExitCode() reports -1.
			return NewErrorResult(ExitFailure, exitErr)
		}
		return &Result{ExitCode: code}
	}

	// Not started at all (missing executable, permission denied, ...).
	return NewErrorResult(ExitFailure, err)
}
