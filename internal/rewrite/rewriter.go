// Package rewrite mutates project files in place so package references point
// at centralized version properties instead of inline literal versions.
package rewrite

import (
	"context"

	"github.com/nucent/nucent/internal/core"
	"github.com/nucent/nucent/internal/msbuild"
	"github.com/nucent/nucent/internal/nuget"
)

// FileResult reports the rewrite outcome for one project file.
type FileResult struct {
	// Path is the project file.
	Path string

	// Rewritten counts the version attributes replaced.
	Rewritten int
}

// Result reports the rewrite outcome for the whole run.
type Result struct {
	Files []FileResult
}

// TotalRewritten returns the number of version attributes replaced across
// all files.
func (r *Result) TotalRewritten() int {
	total := 0
	for _, f := range r.Files {
		total += f.Rewritten
	}
	return total
}

// Rewriter replaces inline versions with property references.
type Rewriter struct {
	fs core.FileSystem
}

// NewRewriter creates a Rewriter using the given filesystem.
func NewRewriter(fs core.FileSystem) *Rewriter {
	return &Rewriter{fs: fs}
}

// Rewrite processes the given project files sequentially, in order. For each
// package/tool reference with a non-empty id and a present version attribute,
// the version value is replaced with the property-reference syntax derived
// from the id. The derivation never consults the current version value, so a
// second pass reassigns the same string and the operation is idempotent.
//
// Files are persisted in place with no backup. A failure partway through
// leaves earlier files rewritten; there is no rollback.
func (w *Rewriter) Rewrite(ctx context.Context, paths []string) (*Result, error) {
	result := &Result{}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		project, err := msbuild.LoadProject(ctx, w.fs, path)
		if err != nil {
			return nil, err
		}

		count := rewriteProject(project)
		if count > 0 {
			if err := project.Save(ctx); err != nil {
				return nil, err
			}
		}
		result.Files = append(result.Files, FileResult{Path: path, Rewritten: count})
	}

	return result, nil
}

// rewriteProject updates every eligible reference in a parsed project and
// returns how many version attributes changed value.
func rewriteProject(project *msbuild.Project) int {
	count := 0
	for _, ref := range project.References() {
		id, ok := ref.ID()
		if !ok || id == "" {
			continue
		}
		// An empty version value is still rewritten; only a missing
		// version attribute skips the element.
		current, ok := ref.Version()
		if !ok {
			continue
		}
		target := nuget.PropertyRef(id)
		if current == target {
			continue
		}
		ref.SetVersion(target)
		count++
	}
	return count
}
