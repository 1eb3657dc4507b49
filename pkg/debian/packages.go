package debian

import (
	"regexp"
	"sort"
	"strings"
)

var regexpName = regexp.MustCompile(`^[A-Za-z0-9+._-]+`)

// ExtractDependencies returns the bare package names referenced by
// a relationship field such as "Depends".
//
// Version constraints and architecture qualifiers are stripped and
// every alternative of a "|" group is returned as its own entry.
// The result is deduplicated, sorted and never nil.
//
// https://www.debian.org/doc/debian-policy/ch-relationships.html
func ExtractDependencies(s string) []string {
	if s == "" {
		return []string{}
	}
	names := map[string]struct{}{}
	for _, group := range strings.Split(s, ",") {
		for _, alt := range strings.Split(group, "|") {
			name := regexpName.FindString(strings.TrimSpace(alt))
			if name == "" {
				continue
			}
			names[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(names))
	for k := range names {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
