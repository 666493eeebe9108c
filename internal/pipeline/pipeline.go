// Package pipeline wires the collector and reconciler into the read-only
// half of a run, shared by the reconcile and check commands. The rewrite
// step stays in the command layer because only reconcile performs it.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/nucent/nucent/internal/collector"
	"github.com/nucent/nucent/internal/config"
	"github.com/nucent/nucent/internal/core"
	"github.com/nucent/nucent/internal/msbuild"
	"github.com/nucent/nucent/internal/nuget"
	"github.com/nucent/nucent/internal/reconcile"
)

// Validation sentinels. The CLI maps each to a distinct exit code.
var (
	// ErrRootNotFound indicates the scan root does not exist or is not a directory.
	ErrRootNotFound = errors.New("root directory not found")

	// ErrPropsNotFound indicates the centralized properties file does not exist.
	ErrPropsNotFound = errors.New("properties file not found")

	// ErrPropsName indicates the properties file has the wrong base name.
	ErrPropsName = errors.New("properties file must be named " + msbuild.PropsFileName)
)

// Validate checks the preconditions shared by all commands. Every failure is
// fatal and reported before any file is touched.
func Validate(ctx context.Context, fs core.FileSystem, root, propsPath string) error {
	info, err := fs.Stat(ctx, root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	if !msbuild.IsPropsFileName(propsPath) {
		return fmt.Errorf("%w: %s", ErrPropsName, propsPath)
	}
	if _, err := fs.Stat(ctx, propsPath); err != nil {
		return fmt.Errorf("%w: %s", ErrPropsNotFound, propsPath)
	}

	return nil
}

// Analysis is the read-only outcome of a run: everything needed to report
// and, for the reconcile command, to rewrite.
type Analysis struct {
	// Scan is the collector output.
	Scan *collector.Result

	// Props is the parsed centralized properties file.
	Props *msbuild.PropsFile

	// Plan is the reconciliation diff.
	Plan *reconcile.Plan

	// Collisions are distinct ids deriving the same property name.
	Collisions []nuget.Collision
}

// Analyze runs the collector over root, loads the centralized properties
// file, and computes the reconciliation plan. No file is modified.
func Analyze(ctx context.Context, fs core.FileSystem, cfg *config.Config, root, propsPath string) (*Analysis, error) {
	svc := collector.NewService(fs, cfg)
	scan, err := svc.Scan(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	props, err := msbuild.LoadPropsFile(ctx, fs, propsPath)
	if err != nil {
		return nil, err
	}

	existing := props.PropertyNames(nuget.PropertyPrefix)

	return &Analysis{
		Scan:       scan,
		Props:      props,
		Plan:       reconcile.BuildPlan(scan.Packages, existing),
		Collisions: nuget.DetectCollisions(scan.Packages),
	}, nil
}
