// SPDX-License-Identifier: MPL-2.0

// Package jana models the -P parameter flags understood by JANA-based
// executables such as eicrecon.
//
// A parameter is a (category, key, value) triple rendered as
// -P<category>:<key>=<value>. The package also separates passthrough
// tokens (anything starting with -P or -p) from the arguments that the
// debugrun command line parser consumes itself.
package jana
