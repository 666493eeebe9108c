package nuget

import "testing"

func TestSet_Add_DistinctPairs(t *testing.T) {
	s := NewSet()

	if !s.Add(Reference{ID: "Foo.Bar", Version: "1.0.0"}) {
		t.Error("first Add returned false")
	}
	if !s.Add(Reference{ID: "Foo.Bar", Version: "2.0.0"}) {
		t.Error("Add with different version returned false")
	}

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSet_Add_CaseInsensitiveDuplicate(t *testing.T) {
	tests := []struct {
		name string
		a, b Reference
	}{
		{
			name: "identical",
			a:    Reference{ID: "Foo.Bar", Version: "1.0.0"},
			b:    Reference{ID: "Foo.Bar", Version: "1.0.0"},
		},
		{
			name: "id casing differs",
			a:    Reference{ID: "Foo.Bar", Version: "1.0.0"},
			b:    Reference{ID: "foo.bar", Version: "1.0.0"},
		},
		{
			name: "version casing differs",
			a:    Reference{ID: "Foo.Bar", Version: "1.0.0-RC1"},
			b:    Reference{ID: "Foo.Bar", Version: "1.0.0-rc1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet()
			s.Add(tt.a)
			if s.Add(tt.b) {
				t.Error("duplicate Add returned true")
			}
			if s.Len() != 1 {
				t.Errorf("Len() = %d, want 1", s.Len())
			}
		})
	}
}

func TestSet_Entries_PreservesInsertionOrder(t *testing.T) {
	s := NewSet()
	s.Add(Reference{ID: "Zebra", Version: "1.0"})
	s.Add(Reference{ID: "Alpha", Version: "1.0"})

	entries := s.Entries()
	if entries[0].ID != "Zebra" || entries[1].ID != "Alpha" {
		t.Errorf("Entries() order = %v, want insertion order", entries)
	}
}

func TestSet_HasProperty(t *testing.T) {
	s := NewSet()
	s.Add(Reference{ID: "Other.Pkg", Version: "1.0.0"})

	if !s.HasProperty("PackageVersion_Other_Pkg") {
		t.Error("HasProperty(derived name) = false, want true")
	}
	if !s.HasProperty("packageversion_other_pkg") {
		t.Error("HasProperty is expected to be case-insensitive")
	}
	if s.HasProperty("PackageVersion_Foo_Bar") {
		t.Error("HasProperty(unrelated name) = true, want false")
	}
}
