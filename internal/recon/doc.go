// SPDX-License-Identifier: MPL-2.0

// Package recon turns a debugrun invocation into an eicrecon launch.
//
// A Request holds what the user asked for, a Layout says where the build
// lives, BuildCommand assembles the argument vector, and Orchestrator ties
// them together: it prints the layout report, overlays the plugin and
// library search paths, runs the child and prints the timing report.
package recon
