// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "launch eicrecon"},
			expected: "failed to launch eicrecon",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load configuration", Resource: "config.cue"},
			expected: "failed to load configuration: config.cue",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "launch eicrecon",
				Resource:  "/opt/eicrecon",
				Cause:     errors.New("no such file or directory"),
			},
			expected: "failed to launch eicrecon: /opt/eicrecon: no such file or directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := NewErrorContext().
		WithOperation("load configuration").
		Wrap(fmt.Errorf("decode: %w", sentinel)).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find the ActionableError")
	}
	if ae.Operation != "load configuration" {
		t.Errorf("Operation = %q", ae.Operation)
	}
}

func TestActionableError_Format(t *testing.T) {
	err := &ActionableError{
		Operation:   "load configuration",
		Resource:    "config.cue",
		Suggestions: []string{"Check the syntax", "Run 'debugrun config init'"},
		Cause:       fmt.Errorf("outer: %w", errors.New("inner")),
	}

	plain := err.Format(false)
	if !strings.Contains(plain, "  • Check the syntax") || !strings.Contains(plain, "  • Run 'debugrun config init'") {
		t.Errorf("Format(false) missing suggestions:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain:\n%s", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "1. outer: inner") || !strings.Contains(verbose, "2. inner") {
		t.Errorf("Format(true) missing the error chain:\n%s", verbose)
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}
}

func TestWrapWithOperation(t *testing.T) {
	if WrapWithOperation(nil, "x") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
	cause := errors.New("boom")
	if got := WrapWithOperation(cause, "run").Error(); got != "failed to run: boom" {
		t.Errorf("Error() = %q", got)
	}
}
