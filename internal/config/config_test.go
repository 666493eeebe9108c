package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}

func TestLoadConfig_NoFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exts := cfg.GetExtensions()
	if len(exts) != 2 || exts[0] != ".csproj" || exts[1] != ".fsproj" {
		t.Errorf("GetExtensions() = %v, want defaults", exts)
	}
	if cfg.SortProps {
		t.Error("SortProps = true, want false by default")
	}
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	content := "extensions:\n  - .csproj\n  - .vbproj\nexcludes:\n  - legacy\nsort-props: true\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exts := cfg.GetExtensions()
	if len(exts) != 2 || exts[1] != ".vbproj" {
		t.Errorf("GetExtensions() = %v, want [.csproj .vbproj]", exts)
	}
	if excludes := cfg.GetExcludes(); len(excludes) != 1 || excludes[0] != "legacy" {
		t.Errorf("GetExcludes() = %v, want [legacy]", excludes)
	}
	if !cfg.SortProps {
		t.Error("SortProps = false, want true")
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("bogus: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	if _, err := LoadConfigFn(); err == nil {
		t.Fatal("expected strict decode error for unknown field, got nil")
	}
}

func TestConfig_NilReceiverDefaults(t *testing.T) {
	var cfg *Config

	if exts := cfg.GetExtensions(); len(exts) == 0 {
		t.Error("nil config GetExtensions() returned no defaults")
	}
	if excludes := cfg.GetExcludes(); excludes != nil {
		t.Errorf("nil config GetExcludes() = %v, want nil", excludes)
	}
}
