// SPDX-License-Identifier: MPL-2.0

// Package config handles debugrun configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/debugrun/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/debugrun/config.cue on
// macOS, %APPDATA%\debugrun\config.cue on Windows), falling back to
// ./debugrun.cue. The file is validated against an embedded CUE schema
// (config_schema.cue). DEBUGRUN_* environment variables override file
// values; command line flags are applied on top by the caller.
package config
