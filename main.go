// SPDX-License-Identifier: MPL-2.0

package main

import cmd "debugrun/cmd/debugrun"

func main() {
	cmd.Execute()
}
