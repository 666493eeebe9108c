// Package msbuild reads and writes MSBuild-style XML documents: project
// files carrying package references, and the centralized Packages.props
// file holding version properties. Parsing is backed by etree so documents
// round-trip with their structure intact.
package msbuild

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/nucent/nucent/internal/core"
)

// Namespace is the MSBuild XML namespace. Version properties are only
// collected from PropertyGroup elements resolved to this namespace.
const Namespace = "http://schemas.microsoft.com/developer/msbuild/2003"

// referenceTags are the element names that declare a package dependency
// inside an ItemGroup.
var referenceTags = []string{"PackageReference", "DotNetCliToolReference"}

// Attribute lookup tables. Both casing variants occur in the wild; each
// list is tried in priority order and the first present attribute wins.
var (
	idAttrNames      = []string{"Include", "include"}
	versionAttrNames = []string{"Version", "version"}
)

// Project is a parsed project file.
type Project struct {
	// Path is the file the document was loaded from and is saved back to.
	Path string

	fs  core.FileSystem
	doc *etree.Document
}

// LoadProject parses the project file at path.
func LoadProject(ctx context.Context, fs core.FileSystem, path string) (*Project, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %q: %w", path, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse project file %q: %w", path, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("project file %q has no root element", path)
	}

	return &Project{Path: path, fs: fs, doc: doc}, nil
}

// References returns every package/tool reference element found inside any
// ItemGroup child of the project root, in document order.
func (p *Project) References() []*ReferenceElement {
	var refs []*ReferenceElement
	for _, group := range p.doc.Root().ChildElements() {
		if group.Tag != "ItemGroup" {
			continue
		}
		for _, el := range group.ChildElements() {
			if isReferenceTag(el.Tag) {
				refs = append(refs, &ReferenceElement{el: el})
			}
		}
	}
	return refs
}

// Save writes the document back to its original path.
func (p *Project) Save(ctx context.Context) error {
	data, err := p.doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize project file %q: %w", p.Path, err)
	}
	if err := p.fs.WriteFile(ctx, p.Path, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write project file %q: %w", p.Path, err)
	}
	return nil
}

// ReferenceElement wraps a single package/tool reference element.
type ReferenceElement struct {
	el *etree.Element
}

// Tag returns the element name ("PackageReference" or "DotNetCliToolReference").
func (r *ReferenceElement) Tag() string {
	return r.el.Tag
}

// ID returns the package identifier attribute value. ok is false when the
// attribute is absent under both accepted casings.
func (r *ReferenceElement) ID() (value string, ok bool) {
	attr := lookupAttr(r.el, idAttrNames)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// Version returns the version attribute value. ok is false when the
// attribute is absent; an empty value with the attribute present returns
// ("", true).
func (r *ReferenceElement) Version() (value string, ok bool) {
	attr := lookupAttr(r.el, versionAttrNames)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// SetVersion replaces the version attribute value in place. It reports false
// when no version attribute is present to replace.
func (r *ReferenceElement) SetVersion(value string) bool {
	attr := lookupAttr(r.el, versionAttrNames)
	if attr == nil {
		return false
	}
	attr.Value = value
	return true
}

// String returns the serialized form of the element, used in warnings that
// name an offending declaration.
func (r *ReferenceElement) String() string {
	doc := etree.NewDocument()
	doc.SetRoot(r.el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return "<" + r.el.Tag + ">"
	}
	return strings.TrimSpace(s)
}

// lookupAttr tries each attribute name in priority order, first match wins.
func lookupAttr(el *etree.Element, names []string) *etree.Attr {
	for _, name := range names {
		if attr := el.SelectAttr(name); attr != nil {
			return attr
		}
	}
	return nil
}

func isReferenceTag(tag string) bool {
	for _, t := range referenceTags {
		if tag == t {
			return true
		}
	}
	return false
}
