package model

import (
	"sort"
	"strings"
)

// ChangeSet is the deduplicated set of repository-relative paths touched
// between a base and head revision. It is built once per evaluation and
// never mutated afterwards.
type ChangeSet struct {
	paths map[string]struct{}
}

// NewChangeSet builds a ChangeSet from raw path strings. Empty strings are
// ignored and duplicates collapse.
func NewChangeSet(paths ...string) ChangeSet {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		set[p] = struct{}{}
	}
	return ChangeSet{paths: set}
}

// Len returns the number of distinct changed paths
func (s ChangeSet) Len() int {
	return len(s.paths)
}

// Paths returns the changed paths in sorted order
func (s ChangeSet) Paths() []string {
	paths := make([]string, 0, len(s.paths))
	for p := range s.paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// AnyUnder reports whether any changed path starts with the given prefix.
// An empty prefix never matches; it would otherwise claim every path.
func (s ChangeSet) AnyUnder(prefix string) bool {
	if prefix == "" {
		return false
	}
	for p := range s.paths {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
