// Package core provides shared low-level abstractions for the nucent CLI,
// most importantly the FileSystem interface that lets the collector,
// reconciler, and rewriter run against either the real OS or an in-memory
// mock in tests.
package core

import (
	"context"
	"io/fs"
	"os"
)

// File permission constants used when writing files.
const (
	// PermOwnerRW is the default permission for files written by nucent.
	PermOwnerRW fs.FileMode = 0644
)

// FileSystem abstracts file operations for testability.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error)
}

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the operating system.
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

func (o *osFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (o *osFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func (o *osFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

func (o *osFileSystem) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}
