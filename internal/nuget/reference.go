// Package nuget models NuGet package references and the canonical
// version-property naming used by the centralized Packages.props file.
package nuget

import "strings"

// Reference is a single package reference parsed from a project file.
type Reference struct {
	// ID is the package identifier, e.g. "Newtonsoft.Json".
	ID string

	// Version is the declared version string, treated as opaque. It may
	// already be a property reference like "$(PackageVersion_Newtonsoft_Json)".
	Version string
}

// Key returns the identity key for deduplication. Two references with the
// same id and version are the same entity regardless of casing or source file.
func (r Reference) Key() string {
	return strings.ToLower(r.ID) + "|" + strings.ToLower(r.Version)
}

// Set is a deduplicated collection of references keyed by Reference.Key.
// Insertion order is preserved so iteration is deterministic.
type Set struct {
	keys    map[string]struct{}
	entries []Reference
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{keys: make(map[string]struct{})}
}

// Add inserts a reference. Insertion is idempotent: adding an entry whose
// (id, version) pair already exists (under case-insensitive comparison)
// leaves the set unchanged and returns false.
func (s *Set) Add(ref Reference) bool {
	key := ref.Key()
	if _, ok := s.keys[key]; ok {
		return false
	}
	s.keys[key] = struct{}{}
	s.entries = append(s.entries, ref)
	return true
}

// Contains reports whether an equal reference is already in the set.
func (s *Set) Contains(ref Reference) bool {
	_, ok := s.keys[ref.Key()]
	return ok
}

// Len returns the number of distinct references.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns the references in insertion order.
func (s *Set) Entries() []Reference {
	out := make([]Reference, len(s.entries))
	copy(out, s.entries)
	return out
}

// PropertyNames returns the set of canonical property names derived from
// every reference id, for membership tests. Lookups should go through
// HasProperty so name comparison stays case-insensitive, matching MSBuild
// property semantics.
func (s *Set) PropertyNames() map[string]struct{} {
	names := make(map[string]struct{}, len(s.entries))
	for _, ref := range s.entries {
		names[strings.ToLower(PropertyName(ref.ID))] = struct{}{}
	}
	return names
}

// HasProperty reports whether any reference in the set derives the given
// property name (case-insensitive).
func (s *Set) HasProperty(name string) bool {
	_, ok := s.PropertyNames()[strings.ToLower(name)]
	return ok
}
