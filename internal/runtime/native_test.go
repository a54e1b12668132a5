// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"debugrun/internal/testutil"
)

func TestNativeRuntimeValidate(t *testing.T) {
	t.Parallel()

	r := NewNativeRuntime()
	if err := r.Validate(&ExecutionContext{}); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("Validate(empty) = %v, want ErrEmptyCommand", err)
	}

	result := r.Execute(&ExecutionContext{Argv: []string{""}})
	if result.ExitCode != ExitFailure || !errors.Is(result.Error, ErrEmptyCommand) {
		t.Errorf("Execute(empty) = %+v", result)
	}
}

func TestNativeRuntimeExecuteSuccess(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exe := filepath.Join(dir, "child")
	testutil.WriteStubExecutable(t, exe, `printf '%s|' "$@"; printf '%s' "$MARKER"`)

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	r := &NativeRuntime{Clock: testutil.NewSteppingClock(start, 3*time.Second)}

	var stdout bytes.Buffer
	result := r.Execute(&ExecutionContext{
		Context: context.Background(),
		Argv:    []string{exe, "-Pjana:nevents=5", "in file.root"},
		Env:     []string{"MARKER=overlay"},
		Stdout:  &stdout,
		Stderr:  &stdout,
	})

	if !result.Success() {
		t.Fatalf("Execute() = %+v, want success", result)
	}
	if got, want := stdout.String(), "-Pjana:nevents=5|in file.root|overlay"; got != want {
		t.Errorf("child output = %q, want %q", got, want)
	}
	if !result.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, want %v", result.StartedAt, start)
	}
	if result.Elapsed() != 3*time.Second {
		t.Errorf("Elapsed() = %v, want 3s", result.Elapsed())
	}
}

func TestNativeRuntimeExecuteNonZeroExit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exe := filepath.Join(dir, "child")
	testutil.WriteStubExecutable(t, exe, "exit 3")

	result := NewNativeRuntime().Execute(&ExecutionContext{Argv: []string{exe}, Env: []string{}})
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if result.Error != nil {
		t.Errorf("Error = %v, want nil for a plain non-zero exit", result.Error)
	}
	if result.Success() {
		t.Error("Success() = true for exit 3")
	}
}

func TestNativeRuntimeExecuteMissingExecutable(t *testing.T) {
	t.Parallel()

	exe := filepath.Join(t.TempDir(), "does-not-exist")
	result := NewNativeRuntime().Execute(&ExecutionContext{Argv: []string{exe}})

	if result.ExitCode != ExitFailure {
		t.Errorf("ExitCode = %d, want %d", result.ExitCode, ExitFailure)
	}
	if !errors.Is(result.Error, os.ErrNotExist) {
		t.Errorf("Error = %v, want os.ErrNotExist", result.Error)
	}
	if result.StartedAt.IsZero() || result.FinishedAt.IsZero() {
		t.Error("timestamps should be recorded even when the child fails to start")
	}
}

func TestNativeRuntimeExecuteCanceled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exe := filepath.Join(dir, "child")
	testutil.WriteStubExecutable(t, exe, "exec sleep 30")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewNativeRuntime().Execute(&ExecutionContext{Context: ctx, Argv: []string{exe}, Env: os.Environ()})
	if result.Success() {
		t.Fatal("Execute() with a canceled context should fail")
	}
	if result.ExitCode != ExitFailure {
		t.Errorf("ExitCode = %d, want %d", result.ExitCode, ExitFailure)
	}
}

func TestNativeRuntimeExecuteTTY(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exe := filepath.Join(dir, "child")
	testutil.WriteStubExecutable(t, exe, `if [ -t 1 ]; then echo tty; else echo notty; fi`)

	var stdout bytes.Buffer
	result := NewNativeRuntime().Execute(&ExecutionContext{Argv: []string{exe}, Env: []string{}, Stdout: &stdout, TTY: true})
	if result.Error != nil {
		t.Skipf("pseudo-terminal unavailable: %v", result.Error)
	}
	if !result.Success() {
		t.Fatalf("Execute() = %+v, want success", result)
	}
	if !strings.Contains(stdout.String(), "tty") || strings.Contains(stdout.String(), "notty") {
		t.Errorf("child output = %q, want it to see a terminal", stdout.String())
	}
}
