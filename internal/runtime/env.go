// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"os"
	"strings"
)

const (
	// SearchPathSeparator joins entries of colon-separated search paths
	// such as JANA_PLUGIN_PATH and LD_LIBRARY_PATH.
	SearchPathSeparator = ":"

	// PluginPathVar is the JANA plugin search path.
	PluginPathVar = "JANA_PLUGIN_PATH"
	// LibraryPathVar is the dynamic linker search path.
	LibraryPathVar = "LD_LIBRARY_PATH"
)

// EnvOverlay holds variables that replace entries of a base environment
// in the child process. Overlay values are computed from a snapshot of
// the base environment; neither the snapshot nor the orchestrator's own
// process environment is modified.
type EnvOverlay struct {
	base   map[string]string
	names  []string
	values map[string]string
}

// NewEnvOverlay creates an empty overlay over the given "KEY=VALUE" snapshot.
// A nil snapshot is treated as an empty environment.
func NewEnvOverlay(environ []string) *EnvOverlay {
	base := make(map[string]string, len(environ))
	for _, entry := range environ {
		name, value, ok := splitEnvEntry(entry)
		if !ok {
			continue
		}
		base[name] = value
	}
	return &EnvOverlay{base: base, values: make(map[string]string)}
}

// Lookup returns the overlay value of name, falling back to the base snapshot.
func (o *EnvOverlay) Lookup(name string) (string, bool) {
	if v, ok := o.values[name]; ok {
		return v, true
	}
	v, ok := o.base[name]
	return v, ok
}

// Set stores value for name in the overlay.
func (o *EnvOverlay) Set(name, value string) {
	if _, exists := o.values[name]; !exists {
		o.names = append(o.names, name)
	}
	o.values[name] = value
}

// PrependPaths prepends each segment, in the given order, to the current
// value of name. Every segment is followed by SearchPathSeparator, so the
// last segment ends up first and an unset variable leaves a trailing
// separator. The new value is stored and returned.
func (o *EnvOverlay) PrependPaths(name string, segments ...string) string {
	value, _ := o.Lookup(name)
	for _, segment := range segments {
		value = segment + SearchPathSeparator + value
	}
	o.Set(name, value)
	return value
}

// Names returns the overlaid variable names in the order they were first set.
func (o *EnvOverlay) Names() []string {
	return append([]string(nil), o.names...)
}

// Get returns the overlay value of name only, ignoring the base snapshot.
func (o *EnvOverlay) Get(name string) string {
	return o.values[name]
}

// Entries returns the overlay as "KEY=VALUE" strings in insertion order.
func (o *EnvOverlay) Entries() []string {
	entries := make([]string, 0, len(o.names))
	for _, name := range o.names {
		entries = append(entries, name+"="+o.values[name])
	}
	return entries
}

// Apply returns environ with overlay variables replacing entries of the
// same name. Untouched entries keep their order; overlay entries are
// appended at the end.
func (o *EnvOverlay) Apply(environ []string) []string {
	result := make([]string, 0, len(environ)+len(o.names))
	for _, entry := range environ {
		name, _, ok := splitEnvEntry(entry)
		if ok {
			if _, overlaid := o.values[name]; overlaid {
				continue
			}
		}
		result = append(result, entry)
	}
	return append(result, o.Entries()...)
}

// SplitSearchPath splits a colon-separated search path, dropping empty entries.
func SplitSearchPath(value string) []string {
	var segments []string
	for _, segment := range strings.Split(value, SearchPathSeparator) {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// HostEnviron returns the orchestrator's own environment snapshot.
func HostEnviron() []string {
	return os.Environ()
}

// splitEnvEntry splits "KEY=VALUE". A leading '=' belongs to the name, which
// is how Windows stores per-drive working directories (e.g. "=C:=C:\\").
func splitEnvEntry(entry string) (name, value string, ok bool) {
	if entry == "" {
		return "", "", false
	}
	idx := strings.IndexByte(entry[1:], '=')
	if idx == -1 {
		return "", "", false
	}
	idx++
	return entry[:idx], entry[idx+1:], true
}
