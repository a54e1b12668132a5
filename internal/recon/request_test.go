// SPDX-License-Identifier: MPL-2.0

package recon

import (
	"errors"
	"slices"
	"testing"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		output     string
		events     string
		wantEvents string
		wantErr    bool
	}{
		{name: "explicit count", input: "in.edm4hep.root", output: "run1", events: "5", wantEvents: "5"},
		{name: "default count", input: "in.edm4hep.root", output: "run1", events: "", wantEvents: DefaultEventCount},
		{name: "zero events", input: "in.edm4hep.root", output: "run1", events: "0", wantEvents: "0"},
		{name: "empty input", input: "", output: "run1", events: "5", wantErr: true},
		{name: "blank output", input: "in.root", output: "  ", events: "5", wantErr: true},
		{name: "non-numeric count", input: "in.root", output: "run1", events: "ten", wantErr: true},
		{name: "negative count", input: "in.root", output: "run1", events: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := NewRequest(tt.input, tt.output, tt.events, nil)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRequest) {
					t.Fatalf("NewRequest() error = %v, want ErrInvalidRequest", err)
				}
				var reqErr *InvalidRequestError
				if !errors.As(err, &reqErr) || reqErr.Field == "" {
					t.Errorf("error should name the rejected field: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRequest() error = %v", err)
			}
			if req.InputFile() != tt.input || req.OutputBase() != tt.output {
				t.Errorf("request = %q/%q, want %q/%q", req.InputFile(), req.OutputBase(), tt.input, tt.output)
			}
			if req.EventCount() != tt.wantEvents {
				t.Errorf("EventCount() = %q, want %q", req.EventCount(), tt.wantEvents)
			}
		})
	}
}

func TestRequestOutputFiles(t *testing.T) {
	t.Parallel()

	for _, events := range []string{"1", "10", "100000"} {
		req, err := NewRequest("in.root", "run1", events, nil)
		if err != nil {
			t.Fatalf("NewRequest() error = %v", err)
		}
		if got := req.TreeFile(); got != "run1.tree.edm4eic.root" {
			t.Errorf("TreeFile() = %q", got)
		}
		if got := req.HistogramFile(); got != "run1.ana.root" {
			t.Errorf("HistogramFile() = %q", got)
		}
		if got := req.FlagsDumpFile(); got != "run1.flags.json" {
			t.Errorf("FlagsDumpFile() = %q", got)
		}
	}
}

func TestRequestPassthroughIsCopied(t *testing.T) {
	t.Parallel()

	tokens := []string{"-Pjana:timeout=0", "-pfoo=bar"}
	req, err := NewRequest("in.root", "out", "", tokens)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	tokens[0] = "mutated"
	got := req.Passthrough()
	if !slices.Equal(got, []string{"-Pjana:timeout=0", "-pfoo=bar"}) {
		t.Fatalf("Passthrough() = %v, caller mutation leaked in", got)
	}

	got[1] = "mutated"
	if req.Passthrough()[1] != "-pfoo=bar" {
		t.Error("Passthrough() should return a copy")
	}
}
