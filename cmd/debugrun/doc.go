// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for debugrun.
//
// The root command launches eicrecon with the standard debug parameters;
// the config subcommands inspect and initialize the configuration file.
// Tokens starting with -P or -p are split off before Cobra parses the
// command line and are forwarded to eicrecon unchanged.
package cmd
