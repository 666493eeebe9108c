// Package report defines the structured result of a reconciliation run and
// its presentation. Business logic fills in a Report; only the Formatter
// touches an output stream.
package report

import (
	"github.com/nucent/nucent/internal/collector"
	"github.com/nucent/nucent/internal/nuget"
	"github.com/nucent/nucent/internal/reconcile"
	"github.com/nucent/nucent/internal/rewrite"
)

// Report aggregates the outcome of every pipeline stage for one run.
type Report struct {
	// Root is the scanned directory.
	Root string

	// PropsFile is the centralized properties file path.
	PropsFile string

	// Projects are the project files visited.
	Projects []string

	// Warnings are the declarations skipped by the collector.
	Warnings []collector.Warning

	// Collisions are distinct package ids deriving the same property name.
	Collisions []nuget.Collision

	// Plan holds the to-add and to-remove lists, already ordered.
	Plan *reconcile.Plan

	// Rewrite is the in-place rewrite outcome, nil when no rewrite ran
	// (check command, or a declined confirmation).
	Rewrite *rewrite.Result

	// PropsSorted is true when the centralized file was rewritten sorted.
	PropsSorted bool
}

// HasWarnings reports whether any declaration was skipped.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// HasChanges reports whether the plan contains anything to add or remove.
func (r *Report) HasChanges() bool {
	return r.Plan != nil && !r.Plan.IsEmpty()
}
