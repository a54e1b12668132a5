// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"debugrun/internal/config"
	"debugrun/internal/issue"
	"debugrun/internal/recon"
	"debugrun/internal/runtime"
)

// classifyRunFailure maps a failed launch to an issue catalog ID and a
// styled message for stderr.
func classifyRunFailure(layout recon.Layout, result *runtime.Result, verbose bool) (issueID issue.Id, styledMsg string) {
	if result.Error == nil {
		err := fmt.Errorf("eicrecon exited with code %d", result.ExitCode)
		return issue.ChildProcessFailedId, formatRunError(err, verbose)
	}

	switch {
	case errors.Is(result.Error, os.ErrNotExist), errors.Is(result.Error, exec.ErrNotFound):
		err := issue.NewErrorContext().
			WithOperation("start eicrecon").
			WithResource(layout.Executable).
			WithSuggestion("Build eicrecon, or point --executable at an existing binary").
			WithSuggestion("Check --base-path; it defaults to the directory of the debugrun binary").
			Wrap(result.Error).
			BuildError()
		return issue.ExecutableNotFoundId, formatRunError(err, verbose)
	case errors.Is(result.Error, os.ErrPermission):
		err := issue.NewErrorContext().
			WithOperation("start eicrecon").
			WithResource(layout.Executable).
			WithSuggestion("Make the file executable: chmod +x " + layout.Executable).
			Wrap(result.Error).
			BuildError()
		return issue.ExecutableNotFoundId, formatRunError(err, verbose)
	default:
		return issue.ChildProcessFailedId, formatRunError(issue.WrapWithOperation(result.Error, "run eicrecon"), verbose)
	}
}

func formatRunError(err error, verbose bool) string {
	return fmt.Sprintf("\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}

// renderIssue writes the help page for id to w. Rendering problems are
// not reported; the error line that follows carries the essentials.
func renderIssue(w io.Writer, id issue.Id, scheme config.ColorScheme) {
	found := issue.Get(id)
	if found == nil {
		return
	}
	rendered, err := found.Render(scheme.GlamourStyle())
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}
