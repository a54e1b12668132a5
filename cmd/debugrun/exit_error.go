// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"debugrun/internal/runtime"
)

// ExitCodeUsage is returned for command line usage errors.
const ExitCodeUsage runtime.ExitCode = 2

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// An ExitError without Err has already been reported to the user.
type ExitError struct {
	Code runtime.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps an error returned by the command tree to a process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return int(runtime.ExitSuccess)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code.Validate() != nil || exitErr.Code.IsSuccess() {
			return int(runtime.ExitFailure)
		}
		return int(exitErr.Code)
	}
	return int(runtime.ExitFailure)
}
