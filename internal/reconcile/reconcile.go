// Package reconcile diffs a collected package set against the properties
// already present in the centralized Packages.props file.
package reconcile

import (
	"sort"
	"strings"

	"github.com/nucent/nucent/internal/nuget"
)

// AddEntry is a property that should be added to the centralized file.
type AddEntry struct {
	// ID is the package id the entry was derived from.
	ID string

	// Property is the canonical property name for ID.
	Property string

	// Version is the literal version string still declared inline.
	Version string
}

// Plan is the outcome of reconciliation, ready for direct reporting. The
// order of both lists is final; formatters must not re-sort.
type Plan struct {
	// ToAdd lists references still carrying an inline literal version,
	// sorted by (id, version) case-insensitively.
	ToAdd []AddEntry

	// ToRemove lists version properties present in the centralized file
	// with no corresponding package in the set, in the file's own order.
	ToRemove []string
}

// BuildPlan computes the reconciliation plan for a package set against the
// property names found in the centralized file.
func BuildPlan(set *nuget.Set, existing []string) *Plan {
	plan := &Plan{}

	for _, ref := range set.Entries() {
		// A reference whose version already is the property-reference
		// syntax for its own id has been centralized; nothing to add.
		if ref.Version == nuget.PropertyRef(ref.ID) {
			continue
		}
		plan.ToAdd = append(plan.ToAdd, AddEntry{
			ID:       ref.ID,
			Property: nuget.PropertyName(ref.ID),
			Version:  ref.Version,
		})
	}

	sort.SliceStable(plan.ToAdd, func(i, j int) bool {
		return compareEntries(plan.ToAdd[i], plan.ToAdd[j]) < 0
	})

	for _, name := range existing {
		if !strings.HasPrefix(name, nuget.PropertyPrefix) {
			continue
		}
		if !set.HasProperty(name) {
			plan.ToRemove = append(plan.ToRemove, name)
		}
	}

	return plan
}

// IsEmpty reports whether the plan has no changes.
func (p *Plan) IsEmpty() bool {
	return len(p.ToAdd) == 0 && len(p.ToRemove) == 0
}

// compareEntries orders by id, then version, both case-insensitive. Entries
// equal under both comparisons keep their encounter order (stable sort).
func compareEntries(a, b AddEntry) int {
	if c := compareFold(a.ID, b.ID); c != 0 {
		return c
	}
	return compareFold(a.Version, b.Version)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
