// Package collector scans a directory tree for project files and gathers
// every package reference into a deduplicated set. Per-entry problems are
// recorded as warnings on the result rather than printed, so callers render
// them through the presentation layer.
package collector

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nucent/nucent/internal/config"
	"github.com/nucent/nucent/internal/core"
	"github.com/nucent/nucent/internal/msbuild"
	"github.com/nucent/nucent/internal/nuget"
)

// skipDirs are directory names never descended into. Build outputs and
// package caches routinely contain copied project files that must not be
// collected or rewritten.
var skipDirs = []string{
	"bin", "obj", "packages", ".nuget",
	"node_modules", "vendor", "dist", "build", "out", "target",
	".git", ".vs", ".idea", ".vscode",
}

// Warning records a recoverable per-entry failure: a package or tool
// reference that could not be collected.
type Warning struct {
	// Project is the project file containing the declaration.
	Project string

	// Element is the serialized form of the offending declaration.
	Element string

	// Reason describes what was missing.
	Reason string
}

// Result is the outcome of one scan.
type Result struct {
	// Projects are the project file paths visited, in scan order. The
	// rewriter consumes this list.
	Projects []string

	// Packages is the deduplicated set of collected references.
	Packages *nuget.Set

	// Warnings are the skipped declarations.
	Warnings []Warning
}

// Service scans directory trees for package references.
type Service struct {
	fs  core.FileSystem
	cfg *config.Config
}

// NewService creates a collector Service.
func NewService(fs core.FileSystem, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Service{fs: fs, cfg: cfg}
}

// Scan walks root recursively, parses every project file found, and collects
// package references. A project file that fails to parse aborts the scan;
// declarations missing their id or version become warnings and are skipped.
func (s *Service) Scan(ctx context.Context, root string) (*Result, error) {
	result := &Result{Packages: nuget.NewSet()}

	paths, err := s.findProjectFiles(ctx, root)
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		project, err := msbuild.LoadProject(ctx, s.fs, path)
		if err != nil {
			return nil, err
		}
		result.Projects = append(result.Projects, path)
		s.collectReferences(project, result)
	}

	return result, nil
}

// collectReferences extracts the references of one parsed project into the result.
func (s *Service) collectReferences(project *msbuild.Project, result *Result) {
	for _, ref := range project.References() {
		id, ok := ref.ID()
		if !ok || id == "" {
			result.Warnings = append(result.Warnings, Warning{
				Project: project.Path,
				Element: ref.String(),
				Reason:  "missing or empty package id attribute",
			})
			continue
		}

		version, ok := ref.Version()
		if !ok || version == "" {
			result.Warnings = append(result.Warnings, Warning{
				Project: project.Path,
				Element: ref.String(),
				Reason:  "missing or empty version attribute",
			})
			continue
		}

		result.Packages.Add(nuget.Reference{ID: id, Version: version})
	}
}

// findProjectFiles walks the tree beneath root and returns every file whose
// extension matches the configured project-file extensions.
func (s *Service) findProjectFiles(ctx context.Context, root string) ([]string, error) {
	var paths []string
	excludes := s.cfg.GetExcludes()
	extensions := s.cfg.GetExtensions()

	var walk func(dir string, isRoot bool) error
	walk = func(dir string, isRoot bool) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries, err := s.fs.ReadDir(ctx, dir)
		if err != nil {
			if isRoot {
				return err
			}
			// Unreadable subdirectories are skipped.
			return nil
		}

		for _, entry := range entries {
			name := entry.Name()
			path := filepath.Join(dir, name)

			if entry.IsDir() {
				if s.shouldExclude(name, path, excludes) {
					continue
				}
				if err := walk(path, false); err != nil {
					return err
				}
				continue
			}

			if hasAnyExtension(name, extensions) {
				paths = append(paths, path)
			}
		}
		return nil
	}

	if err := walk(root, true); err != nil {
		return nil, err
	}
	return paths, nil
}

// shouldExclude checks if a directory should be skipped during scanning.
func (s *Service) shouldExclude(name, path string, excludes []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if slices.Contains(skipDirs, strings.ToLower(name)) {
		return true
	}
	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
	}
	return false
}

func hasAnyExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
