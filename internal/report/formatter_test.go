package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nucent/nucent/internal/collector"
	"github.com/nucent/nucent/internal/reconcile"
	"github.com/nucent/nucent/internal/rewrite"
)

func sampleReport() *Report {
	return &Report{
		Root:      "/repo",
		PropsFile: "/repo/Packages.props",
		Projects:  []string{"/repo/A.csproj", "/repo/B.csproj"},
		Warnings: []collector.Warning{
			{
				Project: "/repo/A.csproj",
				Element: `<PackageReference Include="NoVersion"/>`,
				Reason:  "missing or empty version attribute",
			},
		},
		Plan: &reconcile.Plan{
			ToAdd: []reconcile.AddEntry{
				{ID: "Aaa.Pkg", Property: "PackageVersion_Aaa_Pkg", Version: "1.0.0"},
				{ID: "Zzz.Pkg", Property: "PackageVersion_Zzz_Pkg", Version: "2.0.0"},
			},
			ToRemove: []string{"PackageVersion_Gone"},
		},
		Rewrite: &rewrite.Result{
			Files: []rewrite.FileResult{
				{Path: "/repo/A.csproj", Rewritten: 3},
				{Path: "/repo/B.csproj", Rewritten: 1},
			},
		},
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want OutputFormat
	}{
		{"json", FormatJSON},
		{"table", FormatTable},
		{"text", FormatText},
		{"", FormatText},
		{"bogus", FormatText},
	}
	for _, tt := range tests {
		if got := ParseOutputFormat(tt.in); got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatter_Text(t *testing.T) {
	out := NewFormatter(FormatText).FormatReport(sampleReport())

	// Add entries are rendered as paste-ready property declarations, in
	// plan order.
	first := strings.Index(out, "<PackageVersion_Aaa_Pkg>1.0.0</PackageVersion_Aaa_Pkg>")
	second := strings.Index(out, "<PackageVersion_Zzz_Pkg>2.0.0</PackageVersion_Zzz_Pkg>")
	if first == -1 || second == -1 {
		t.Fatalf("output missing property declarations:\n%s", out)
	}
	if first > second {
		t.Error("add entries rendered out of plan order")
	}

	if !strings.Contains(out, "PackageVersion_Gone") {
		t.Errorf("output missing removal entry:\n%s", out)
	}
	if !strings.Contains(out, "missing or empty version attribute") {
		t.Errorf("output missing warning:\n%s", out)
	}
	if !strings.Contains(out, "Rewrote 4 reference(s) across 2 project file(s)") {
		t.Errorf("output missing rewrite summary:\n%s", out)
	}
}

func TestFormatter_Text_NoRewrite(t *testing.T) {
	r := sampleReport()
	r.Rewrite = nil

	out := NewFormatter(FormatText).FormatReport(r)
	if strings.Contains(out, "Rewrote") {
		t.Errorf("report without rewrite mentions a rewrite:\n%s", out)
	}
}

func TestFormatter_JSON(t *testing.T) {
	out := NewFormatter(FormatJSON).FormatReport(sampleReport())

	var decoded struct {
		ToAdd []struct {
			Property string `json:"property"`
			Version  string `json:"version"`
		} `json:"to_add"`
		ToRemove []string `json:"to_remove"`
		Summary  struct {
			AddCount  int `json:"add_count"`
			Rewritten int `json:"rewritten"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}

	if len(decoded.ToAdd) != 2 || decoded.ToAdd[0].Property != "PackageVersion_Aaa_Pkg" {
		t.Errorf("to_add = %v", decoded.ToAdd)
	}
	if len(decoded.ToRemove) != 1 || decoded.ToRemove[0] != "PackageVersion_Gone" {
		t.Errorf("to_remove = %v", decoded.ToRemove)
	}
	if decoded.Summary.AddCount != 2 || decoded.Summary.Rewritten != 4 {
		t.Errorf("summary = %+v", decoded.Summary)
	}
}

func TestFormatter_Table(t *testing.T) {
	out := NewFormatter(FormatTable).FormatReport(sampleReport())

	if !strings.Contains(out, "PROPERTY") || !strings.Contains(out, "PackageVersion_Aaa_Pkg") {
		t.Errorf("table output missing add section:\n%s", out)
	}
}

func TestFormatter_Summary(t *testing.T) {
	f := NewFormatter(FormatText)

	got := f.Summary(sampleReport())
	if !strings.Contains(got, "2 property(ies) to add") || !strings.Contains(got, "1 to remove") {
		t.Errorf("Summary() = %q", got)
	}

	empty := &Report{Plan: &reconcile.Plan{}}
	if !strings.Contains(f.Summary(empty), "already centralized") {
		t.Errorf("Summary(empty) = %q", f.Summary(empty))
	}
}
