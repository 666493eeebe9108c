package msbuild

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/nucent/nucent/internal/core"
)

// PropsFileName is the required base name of the centralized
// version-properties file, compared case-insensitively.
const PropsFileName = "Packages.props"

// IsPropsFileName reports whether the base name of path matches
// PropsFileName, ignoring case.
func IsPropsFileName(path string) bool {
	return strings.EqualFold(filepath.Base(path), PropsFileName)
}

// PropsFile is a parsed centralized version-properties file.
type PropsFile struct {
	// Path is the file the document was loaded from.
	Path string

	fs  core.FileSystem
	doc *etree.Document
}

// LoadPropsFile parses the properties file at path.
func LoadPropsFile(ctx context.Context, fs core.FileSystem, path string) (*PropsFile, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file %q: %w", path, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse properties file %q: %w", path, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("properties file %q has no root element", path)
	}

	return &PropsFile{Path: path, fs: fs, doc: doc}, nil
}

// PropertyNames returns the names of properties carrying the given prefix,
// collected from every PropertyGroup in the MSBuild namespace, in document
// order.
func (f *PropsFile) PropertyNames(prefix string) []string {
	var names []string
	for _, group := range f.propertyGroups() {
		for _, el := range group.ChildElements() {
			if strings.HasPrefix(el.Tag, prefix) {
				names = append(names, el.Tag)
			}
		}
	}
	return names
}

// SortGroups sorts each MSBuild-namespace PropertyGroup's child elements
// alphabetically by element name. Whitespace is re-indented on the next
// Save since reordering invalidates the original layout.
func (f *PropsFile) SortGroups() {
	for _, group := range f.propertyGroups() {
		children := group.ChildElements()
		sorted := make([]*etree.Element, len(children))
		copy(sorted, children)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Tag < sorted[j].Tag })

		for _, el := range children {
			group.RemoveChild(el)
		}
		for _, el := range sorted {
			group.AddChild(el)
		}
	}
	f.doc.Indent(2)
}

// Save writes the document back to its original path.
func (f *PropsFile) Save(ctx context.Context) error {
	data, err := f.doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize properties file %q: %w", f.Path, err)
	}
	if err := f.fs.WriteFile(ctx, f.Path, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write properties file %q: %w", f.Path, err)
	}
	return nil
}

// propertyGroups returns the root's PropertyGroup children scoped to the
// MSBuild namespace. Groups in other namespaces are out of scope for
// reconciliation.
func (f *PropsFile) propertyGroups() []*etree.Element {
	var groups []*etree.Element
	for _, el := range f.doc.Root().ChildElements() {
		if el.Tag == "PropertyGroup" && el.NamespaceURI() == Namespace {
			groups = append(groups, el)
		}
	}
	return groups
}
