// SPDX-License-Identifier: MPL-2.0

package jana

import "strings"

const (
	// FlagPrefix introduces a parameter on the JANA command line.
	FlagPrefix = "-P"

	// lowerFlagPrefix is accepted as a passthrough prefix but is never rendered.
	lowerFlagPrefix = "-p"

	categorySeparator = ":"
	valueSeparator    = "="
)

type (
	// Param is a single JANA parameter. Category is optional; an empty
	// category renders as -P<key>=<value>.
	Param struct {
		Category string
		Key      string
		Value    string
	}
)

// NewParam creates a categorized parameter.
func NewParam(category, key, value string) Param {
	return Param{Category: category, Key: key, Value: value}
}

// NewGlobalParam creates a parameter without a category.
func NewGlobalParam(key, value string) Param {
	return Param{Key: key, Value: value}
}

// Name returns the fully qualified parameter name ("category:key" or "key").
func (p Param) Name() string {
	if p.Category == "" {
		return p.Key
	}
	return p.Category + categorySeparator + p.Key
}

// String renders the parameter as a single command line token.
func (p Param) String() string {
	return FlagPrefix + p.Name() + valueSeparator + p.Value
}

// Render converts parameters to command line tokens, one token per parameter.
func Render(params []Param) []string {
	tokens := make([]string, 0, len(params))
	for _, p := range params {
		tokens = append(tokens, p.String())
	}
	return tokens
}

// ParseParam parses an upper-case -P token back into a Param.
// It reports false for tokens that are not of the form
// -P<name>=<value>; such tokens are still valid passthrough tokens.
func ParseParam(token string) (Param, bool) {
	rest, ok := strings.CutPrefix(token, FlagPrefix)
	if !ok {
		return Param{}, false
	}

	name, value, ok := strings.Cut(rest, valueSeparator)
	if !ok || name == "" {
		return Param{}, false
	}

	category, key, categorized := strings.Cut(name, categorySeparator)
	if !categorized {
		return NewGlobalParam(name, value), true
	}
	if category == "" || key == "" {
		return Param{}, false
	}
	return NewParam(category, key, value), true
}
