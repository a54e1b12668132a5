// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types: ActionableError for
// errors carrying an operation, resource and fix suggestions, and a
// catalog of markdown help pages rendered with glamour.
package issue
