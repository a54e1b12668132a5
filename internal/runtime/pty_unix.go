// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package runtime

import (
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// runWithPTY starts cmd on a new pseudo-terminal and copies everything the
// child writes to stdout until the terminal closes.
func runWithPTY(cmd *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ptmx.Close() }() // Best-effort close; the child is gone by then.

	if stdout == nil {
		stdout = io.Discard
	}

	copied := make(chan struct{})
	go func() {
		// Reading the master returns EIO once the child side closes on Linux.
		_, _ = io.Copy(stdout, ptmx)
		close(copied)
	}()

	waitErr := cmd.Wait()
	<-copied
	return waitErr
}
