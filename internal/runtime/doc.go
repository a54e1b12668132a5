// SPDX-License-Identifier: MPL-2.0

// Package runtime executes the reconstruction child process.
//
// NativeRuntime runs an argument vector directly (no shell) with an
// explicit environment and records start and finish times through an
// injectable Clock. EnvOverlay computes the search-path variables handed
// to the child without touching the orchestrator's own process
// environment.
package runtime
