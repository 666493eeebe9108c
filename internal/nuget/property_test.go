package nuget

import (
	"strings"
	"testing"
)

func TestPropertyName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"Foo.Bar", "PackageVersion_Foo_Bar"},
		{"Foo_Bar", "PackageVersion_Foo_Bar"},
		{"Newtonsoft.Json", "PackageVersion_Newtonsoft_Json"},
		{"Simple", "PackageVersion_Simple"},
		{"a.b.c.d", "PackageVersion_a_b_c_d"},
		// Unusual characters flow through unchanged.
		{"Weird-Pkg+x", "PackageVersion_Weird-Pkg+x"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := PropertyName(tt.id)
			if got != tt.want {
				t.Errorf("PropertyName(%q) = %q, want %q", tt.id, got, tt.want)
			}
			// Deterministic: deriving twice yields the same string.
			if again := PropertyName(tt.id); again != got {
				t.Errorf("PropertyName(%q) second call = %q, want %q", tt.id, again, got)
			}
			if strings.Contains(tt.id, ".") && strings.Contains(got, ".") {
				t.Errorf("PropertyName(%q) = %q still contains a dot", tt.id, got)
			}
		})
	}
}

func TestPropertyRef(t *testing.T) {
	got := PropertyRef("Foo.Bar")
	if got != "$(PackageVersion_Foo_Bar)" {
		t.Errorf("PropertyRef(Foo.Bar) = %q, want %q", got, "$(PackageVersion_Foo_Bar)")
	}
}

func TestDetectCollisions(t *testing.T) {
	s := NewSet()
	s.Add(Reference{ID: "Foo.Bar", Version: "1.0.0"})
	s.Add(Reference{ID: "Foo_Bar", Version: "2.0.0"})
	s.Add(Reference{ID: "Other.Pkg", Version: "1.0.0"})

	collisions := DetectCollisions(s)
	if len(collisions) != 1 {
		t.Fatalf("len(collisions) = %d, want 1", len(collisions))
	}

	c := collisions[0]
	if c.Property != "PackageVersion_Foo_Bar" {
		t.Errorf("Property = %q, want %q", c.Property, "PackageVersion_Foo_Bar")
	}
	if len(c.IDs) != 2 || c.IDs[0] != "Foo.Bar" || c.IDs[1] != "Foo_Bar" {
		t.Errorf("IDs = %v, want [Foo.Bar Foo_Bar]", c.IDs)
	}
}

func TestDetectCollisions_SameIDTwoVersions(t *testing.T) {
	// Two versions of one package are not a collision.
	s := NewSet()
	s.Add(Reference{ID: "Foo.Bar", Version: "1.0.0"})
	s.Add(Reference{ID: "Foo.Bar", Version: "2.0.0"})

	if collisions := DetectCollisions(s); len(collisions) != 0 {
		t.Errorf("len(collisions) = %d, want 0", len(collisions))
	}
}

func TestDetectCollisions_None(t *testing.T) {
	s := NewSet()
	s.Add(Reference{ID: "A.B", Version: "1.0.0"})
	s.Add(Reference{ID: "C.D", Version: "1.0.0"})

	if collisions := DetectCollisions(s); collisions != nil {
		t.Errorf("collisions = %v, want nil", collisions)
	}
}
