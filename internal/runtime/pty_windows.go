// SPDX-License-Identifier: MPL-2.0

//go:build windows

package runtime

import (
	"io"
	"os/exec"
)

func runWithPTY(_ *exec.Cmd, _ io.Writer) error {
	return ErrTTYUnsupported
}
