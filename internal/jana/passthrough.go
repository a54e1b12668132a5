// SPDX-License-Identifier: MPL-2.0

package jana

import "strings"

// IsPassthrough reports whether token must be forwarded verbatim to the
// child process. Only the prefix is checked.
func IsPassthrough(token string) bool {
	return strings.HasPrefix(token, FlagPrefix) || strings.HasPrefix(token, lowerFlagPrefix)
}

// SplitPassthrough partitions args into passthrough tokens and the rest,
// preserving the relative order of both. args is not modified.
//
// rest is never nil so it can be handed to cobra's SetArgs, which falls
// back to os.Args when given a nil slice.
func SplitPassthrough(args []string) (passthrough, rest []string) {
	rest = make([]string, 0, len(args))
	for _, arg := range args {
		if IsPassthrough(arg) {
			passthrough = append(passthrough, arg)
			continue
		}
		rest = append(rest, arg)
	}
	return passthrough, rest
}

// Overrides returns the passthrough tokens that set one of the named
// parameters. The result maps parameter name to the overriding token.
func Overrides(passthrough []string, params []Param) map[string]string {
	known := make(map[string]struct{}, len(params))
	for _, p := range params {
		known[p.Name()] = struct{}{}
	}

	overrides := make(map[string]string)
	for _, token := range passthrough {
		p, ok := ParseParam(token)
		if !ok {
			continue
		}
		if _, exists := known[p.Name()]; exists {
			overrides[p.Name()] = token
		}
	}
	return overrides
}
