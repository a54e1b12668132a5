// SPDX-License-Identifier: MPL-2.0

package recon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	// DefaultEventCount is used when no event count is given.
	DefaultEventCount = "10"

	// FlagsDumpSuffix is appended to the output base for the dump_flags JSON file.
	FlagsDumpSuffix = ".flags.json"
	// TreeSuffix is appended to the output base for the podio output tree.
	TreeSuffix = ".tree.edm4eic.root"
	// HistogramSuffix is appended to the output base for the histogram file.
	HistogramSuffix = ".ana.root"
)

// ErrInvalidRequest is the sentinel error wrapped by InvalidRequestError.
var ErrInvalidRequest = errors.New("invalid request")

type (
	// Request is the parsed invocation. It is immutable once built.
	Request struct {
		inputFile   string
		outputBase  string
		eventCount  string
		passthrough []string
	}

	// InvalidRequestError reports which argument was rejected.
	// It wraps ErrInvalidRequest for errors.Is() compatibility.
	InvalidRequestError struct {
		Field  string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidRequest for errors.Is() compatibility.
func (e *InvalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

// NewRequest validates and builds a Request. An empty eventCount means
// DefaultEventCount. Passthrough tokens are copied.
func NewRequest(inputFile, outputBase, eventCount string, passthrough []string) (Request, error) {
	if strings.TrimSpace(inputFile) == "" {
		return Request{}, &InvalidRequestError{Field: "input file", Reason: "must not be empty"}
	}
	if strings.TrimSpace(outputBase) == "" {
		return Request{}, &InvalidRequestError{Field: "output base name", Reason: "must not be empty"}
	}
	if eventCount == "" {
		eventCount = DefaultEventCount
	}
	if _, err := strconv.ParseUint(eventCount, 10, 64); err != nil {
		return Request{}, &InvalidRequestError{
			Field:  "event count",
			Reason: fmt.Sprintf("%q is not a non-negative integer", eventCount),
		}
	}

	return Request{
		inputFile:   inputFile,
		outputBase:  outputBase,
		eventCount:  eventCount,
		passthrough: slices.Clone(passthrough),
	}, nil
}

// InputFile returns the input file exactly as given.
func (r Request) InputFile() string { return r.inputFile }

// OutputBase returns the output base name, without extension.
func (r Request) OutputBase() string { return r.outputBase }

// EventCount returns the number of events to process.
func (r Request) EventCount() string { return r.eventCount }

// Passthrough returns a copy of the tokens forwarded to eicrecon.
func (r Request) Passthrough() []string { return slices.Clone(r.passthrough) }

// FlagsDumpFile is where dump_flags writes the effective parameters.
func (r Request) FlagsDumpFile() string { return r.outputBase + FlagsDumpSuffix }

// TreeFile is the reconstructed EDM4eic output tree.
func (r Request) TreeFile() string { return r.outputBase + TreeSuffix }

// HistogramFile is the monitoring histogram file.
func (r Request) HistogramFile() string { return r.outputBase + HistogramSuffix }
