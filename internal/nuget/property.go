package nuget

import (
	"sort"
	"strings"
)

// PropertyPrefix is the fixed prefix of every centralized version property.
const PropertyPrefix = "PackageVersion_"

// PropertyName derives the canonical property name for a package id by
// replacing every "." with "_" and prefixing PropertyPrefix. The derivation
// is pure and total: it depends only on the id, never on a version.
//
// Distinct ids can collide after replacement ("Foo.Bar" and "Foo_Bar" both
// derive "PackageVersion_Foo_Bar"). The rule is kept as-is for compatibility
// with existing props files; DetectCollisions surfaces such cases. Ids
// containing characters other than letters, digits, "." or "_" flow through
// unchanged, which can produce a name that is not a valid MSBuild property.
func PropertyName(id string) string {
	return PropertyPrefix + strings.ReplaceAll(id, ".", "_")
}

// PropertyRef returns the fully-qualified property-reference syntax for a
// package id, e.g. "$(PackageVersion_Foo_Bar)".
func PropertyRef(id string) string {
	return "$(" + PropertyName(id) + ")"
}

// Collision groups distinct package ids that derive the same property name.
type Collision struct {
	// Property is the shared derived property name.
	Property string

	// IDs are the distinct package ids mapping to Property, sorted.
	IDs []string
}

// DetectCollisions reports property-name collisions in the set: groups of
// two or more distinct package ids (case-insensitive) that derive the same
// canonical property name. This is a validation pass layered on top of the
// derivation; it never alters the mapping itself.
func DetectCollisions(s *Set) []Collision {
	byProp := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, ref := range s.Entries() {
		prop := PropertyName(ref.ID)
		key := strings.ToLower(prop)
		idKey := strings.ToLower(ref.ID)
		if seen[key] == nil {
			seen[key] = make(map[string]bool)
		}
		if seen[key][idKey] {
			continue
		}
		seen[key][idKey] = true
		byProp[key] = append(byProp[key], ref.ID)
	}

	var collisions []Collision
	for _, ids := range byProp {
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		collisions = append(collisions, Collision{
			Property: PropertyName(ids[0]),
			IDs:      ids,
		})
	}

	sort.Slice(collisions, func(i, j int) bool {
		return collisions[i].Property < collisions[j].Property
	})
	return collisions
}
