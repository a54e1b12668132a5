// SPDX-License-Identifier: MPL-2.0

package recon

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"debugrun/internal/runtime"
	"debugrun/internal/testutil"

	"github.com/charmbracelet/log"
)

// recordingExecutor captures the launch and returns a canned result.
type recordingExecutor struct {
	calls  []*runtime.ExecutionContext
	result *runtime.Result
}

func (e *recordingExecutor) Execute(ctx *runtime.ExecutionContext) *runtime.Result {
	e.calls = append(e.calls, ctx)
	return e.result
}

func testPlan(t *testing.T, passthrough ...string) Plan {
	t.Helper()
	return Plan{
		Request: mustRequest(t, "input.edm4hep.root", "run1", "5", passthrough...),
		Layout: Layout{
			BasePath:    "/root",
			Executable:  "/root/eicrecon",
			PluginDirs:  []string{"/root/lib/EICrecon/plugins"},
			LibraryPath: "/irt/lib",
		},
		Options: defaultOptions(),
	}
}

func finished(code runtime.ExitCode) *runtime.Result {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	return &runtime.Result{ExitCode: code, StartedAt: start, FinishedAt: start.Add(2 * time.Second)}
}

func TestOrchestratorRun(t *testing.T) {
	t.Parallel()

	exec := &recordingExecutor{result: finished(runtime.ExitSuccess)}
	var stdout, logs bytes.Buffer
	o := &Orchestrator{
		Executor: exec,
		Environ:  func() []string { return []string{"JANA_PLUGIN_PATH=/existing/path", "HOME=/home/u"} },
		Stdout:   &stdout,
		Stderr:   &bytes.Buffer{},
		Logger:   log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel}),
	}

	plan := testPlan(t, "-Pjana:nevents=1")
	result, err := o.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Success() {
		t.Fatalf("Run() result = %+v", result)
	}
	if len(exec.calls) != 1 {
		t.Fatalf("executor called %d times, want 1", len(exec.calls))
	}

	call := exec.calls[0]
	want := BuildCommand(plan.Layout.Executable, plan.Request, plan.Options).Args()
	if !slices.Equal(call.Argv, want) {
		t.Errorf("Argv = %v, want %v", call.Argv, want)
	}
	if !slices.Contains(call.Env, "JANA_PLUGIN_PATH=/root/lib/EICrecon/plugins:/existing/path") {
		t.Errorf("child env missing plugin path overlay: %v", call.Env)
	}
	if !slices.Contains(call.Env, "LD_LIBRARY_PATH=/irt/lib:") {
		t.Errorf("child env missing library path overlay: %v", call.Env)
	}
	if !slices.Contains(call.Env, "HOME=/home/u") {
		t.Errorf("child env should inherit the snapshot: %v", call.Env)
	}

	out := stdout.String()
	for _, line := range []string{
		"Repo root_dir: /root\n",
		strings.Join(want, " ") + "\n",
		"Start date and time : 2024-01-02 03:04:05\n",
		"End date and time   : 2024-01-02 03:04:07\n",
		"Execution real time : 0:00:02\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("stdout missing %q:\n%s", line, out)
		}
	}

	if !strings.Contains(logs.String(), "jana:nevents") {
		t.Errorf("debug log should mention the overridden parameter:\n%s", logs.String())
	}
}

func TestOrchestratorRunFailureTiming(t *testing.T) {
	t.Parallel()

	for _, timeOnFailure := range []bool{false, true} {
		exec := &recordingExecutor{result: finished(3)}
		var stdout bytes.Buffer
		o := &Orchestrator{Executor: exec, Environ: func() []string { return nil }, Stdout: &stdout, Stderr: &stdout}

		plan := testPlan(t)
		plan.TimeOnFailure = timeOnFailure
		result, err := o.Run(context.Background(), plan)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if result.ExitCode != 3 {
			t.Errorf("ExitCode = %v, want 3", result.ExitCode)
		}
		if got := strings.Contains(stdout.String(), "Execution real time"); got != timeOnFailure {
			t.Errorf("timeOnFailure=%v: timing printed = %v", timeOnFailure, got)
		}
	}
}

func TestOrchestratorDryRun(t *testing.T) {
	t.Parallel()

	exec := &recordingExecutor{result: finished(runtime.ExitSuccess)}
	var stdout bytes.Buffer
	o := &Orchestrator{Executor: exec, Environ: func() []string { return nil }, Stdout: &stdout}

	plan := testPlan(t)
	plan.DryRun = true
	result, err := o.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Success() {
		t.Errorf("dry run result = %+v", result)
	}
	if len(exec.calls) != 0 {
		t.Fatal("dry run must not launch eicrecon")
	}

	out := stdout.String()
	if !strings.Contains(out, "JANA_PLUGIN_PATH=") || !strings.Contains(out, "/root/lib/EICrecon/plugins:") {
		t.Errorf("dry run should print the overlay:\n%s", out)
	}
	if !strings.Contains(out, "/root/eicrecon ") || !strings.Contains(out, "input.edm4hep.root") {
		t.Errorf("dry run should print the command:\n%s", out)
	}
	if strings.Contains(out, "Execution real time") {
		t.Errorf("dry run should not print timing:\n%s", out)
	}
}

func TestOrchestratorNativeStub(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exe := filepath.Join(dir, "eicrecon")
	argsFile := filepath.Join(dir, "args")
	testutil.WriteStubExecutable(t, exe, `printf '%s\n' "$@" > "`+argsFile+`"; echo "$JANA_PLUGIN_PATH" >> "`+argsFile+`"`)

	var stdout bytes.Buffer
	o := &Orchestrator{
		Executor: &runtime.NativeRuntime{Clock: testutil.NewSteppingClock(time.Time{}, time.Second)},
		Environ:  func() []string { return []string{"PATH=/usr/bin:/bin"} },
		Stdout:   &stdout,
		Stderr:   &stdout,
	}

	plan := Plan{
		Request: mustRequest(t, "input.edm4hep.root", "run1", "5", "-Pextra=1"),
		Layout:  Layout{BasePath: dir, Executable: exe, PluginDirs: []string{filepath.Join(dir, "plugins")}},
		Options: defaultOptions(),
	}
	result, err := o.Run(context.Background(), plan)
	if err != nil || !result.Success() {
		t.Fatalf("Run() = %+v, %v\n%s", result, err, stdout.String())
	}

	lines := strings.Split(strings.TrimSpace(testutil.MustReadFile(t, argsFile)), "\n")
	if lines[len(lines)-2] != "-Pextra=1" {
		t.Errorf("passthrough token should reach the child last: %v", lines)
	}
	if lines[len(lines)-1] != filepath.Join(dir, "plugins")+":" {
		t.Errorf("child JANA_PLUGIN_PATH = %q", lines[len(lines)-1])
	}
	if !strings.Contains(stdout.String(), "File exists: true") {
		t.Errorf("stdout should report the executable exists:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Execution real time : 0:00:01\n") {
		t.Errorf("stdout should report one second elapsed:\n%s", stdout.String())
	}
}
