// SPDX-License-Identifier: MPL-2.0

package jana

import (
	"slices"
	"testing"
)

func TestParamString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		param Param
		want  string
	}{
		{name: "categorized", param: NewParam("jana", "nevents", "10"), want: "-Pjana:nevents=10"},
		{name: "global", param: NewGlobalParam("histsfile", "run1.ana.root"), want: "-Phistsfile=run1.ana.root"},
		{name: "empty value", param: NewParam("podio", "output_file", ""), want: "-Ppodio:output_file="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.param.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderKeepsTokensSeparate(t *testing.T) {
	t.Parallel()

	params := []Param{
		NewParam("dd4hep", "xml_files", "epic_brycecanyon.xml"),
		NewParam("dump_flags", "json", "run1.flags.json"),
	}

	got := Render(params)
	want := []string{
		"-Pdd4hep:xml_files=epic_brycecanyon.xml",
		"-Pdump_flags:json=run1.flags.json",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestParseParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token  string
		want   Param
		wantOK bool
	}{
		{token: "-Pjana:nevents=100", want: NewParam("jana", "nevents", "100"), wantOK: true},
		{token: "-Pplugins=a,b", want: NewGlobalParam("plugins", "a,b"), wantOK: true},
		{token: "-Pdd4hep:xml_files=a=b.xml", want: NewParam("dd4hep", "xml_files", "a=b.xml"), wantOK: true},
		{token: "-Pnovalue", wantOK: false},
		{token: "-P=value", wantOK: false},
		{token: "-P:key=value", wantOK: false},
		{token: "-Pcat:=value", wantOK: false},
		{token: "-pjana:nevents=1", wantOK: false},
		{token: "input.root", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseParam(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("ParseParam(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseParam(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseParamRoundTrip(t *testing.T) {
	t.Parallel()

	p := NewParam("jana", "debug_plugin_loading", "1")
	got, ok := ParseParam(p.String())
	if !ok || got != p {
		t.Errorf("ParseParam(%q) = %+v, %v", p.String(), got, ok)
	}
}
