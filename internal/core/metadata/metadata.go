// Package metadata holds the unified project metadata record that every
// supported config format is projected into.
package metadata

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Metadata is the normalized description of a project, independent of the
// config file it was read from. Optional fields are nil when the source does
// not provide them.
type Metadata struct {
	Name         string            `json:"name" yaml:"name"`
	Version      string            `json:"version" yaml:"version"`
	Description  *string           `json:"description,omitempty" yaml:"description,omitempty"`
	Authors      []string          `json:"authors,omitempty" yaml:"authors,omitempty"`
	License      *string           `json:"license,omitempty" yaml:"license,omitempty"`
	Keywords     []string          `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Dependencies *Dependencies     `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Scripts      map[string]string `json:"scripts,omitempty" yaml:"scripts,omitempty"`
}

// DependencyKind selects which of the two dependency shapes is populated.
type DependencyKind int

const (
	// SimpleDependencies maps a dependency name to a version spec string.
	SimpleDependencies DependencyKind = iota + 1
	// DetailedDependencies maps a dependency name to a DependencyDetails record.
	DetailedDependencies
)

// String returns the string representation of DependencyKind
func (k DependencyKind) String() string {
	switch k {
	case SimpleDependencies:
		return "simple"
	case DetailedDependencies:
		return "detailed"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k DependencyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// DependencyDetails is a single entry of a detailed dependency table.
type DependencyDetails struct {
	Version *string `json:"version,omitempty" yaml:"version,omitempty"`
	URL     *string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Dependencies is a tagged variant: exactly one of Simple or Detailed is set,
// as indicated by Kind. Use NewSimpleDependencies or NewDetailedDependencies.
//
// Presence is carried by the pointer: a nil *Dependencies is an absent table,
// while a non-nil one with no entries is a present empty table. A nil inner
// map on a non-nil value counts as empty, so Equal treats a hand-built
// &Dependencies{Kind: SimpleDependencies} like NewSimpleDependencies(nil).
type Dependencies struct {
	Kind     DependencyKind               `json:"kind" yaml:"kind"`
	Simple   map[string]string            `json:"simple,omitempty" yaml:"simple,omitempty"`
	Detailed map[string]DependencyDetails `json:"detailed,omitempty" yaml:"detailed,omitempty"`
}

// NewSimpleDependencies wraps a name -> version spec map.
func NewSimpleDependencies(deps map[string]string) *Dependencies {
	if deps == nil {
		deps = make(map[string]string)
	}
	return &Dependencies{Kind: SimpleDependencies, Simple: deps}
}

// NewDetailedDependencies wraps a name -> details map.
func NewDetailedDependencies(deps map[string]DependencyDetails) *Dependencies {
	if deps == nil {
		deps = make(map[string]DependencyDetails)
	}
	return &Dependencies{Kind: DetailedDependencies, Detailed: deps}
}

// Len returns the number of declared dependencies.
func (d *Dependencies) Len() int {
	if d == nil {
		return 0
	}
	if d.Kind == DetailedDependencies {
		return len(d.Detailed)
	}
	return len(d.Simple)
}

// Names returns the dependency names in sorted order.
func (d *Dependencies) Names() []string {
	if d == nil {
		return nil
	}
	if d.Kind == DetailedDependencies {
		return slices.Sorted(maps.Keys(d.Detailed))
	}
	return slices.Sorted(maps.Keys(d.Simple))
}

// Spec returns the version spec recorded for name, if any.
func (d *Dependencies) Spec(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	if d.Kind == DetailedDependencies {
		details, ok := d.Detailed[name]
		if !ok || details.Version == nil {
			return "", false
		}
		return *details.Version, true
	}
	spec, ok := d.Simple[name]
	return spec, ok
}

// Equal reports whether both values hold the same variant with the same entries.
// Absent never equals present, even when present is empty.
func (d *Dependencies) Equal(other *Dependencies) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Kind != other.Kind {
		return false
	}
	if d.Kind == DetailedDependencies {
		return maps.EqualFunc(d.Detailed, other.Detailed, func(a, b DependencyDetails) bool {
			return equalStringPtr(a.Version, b.Version) && equalStringPtr(a.URL, b.URL)
		})
	}
	return maps.Equal(d.Simple, other.Simple)
}

// String renders the dependencies as "kind{name: spec, ...}" with sorted names.
func (d *Dependencies) String() string {
	if d == nil {
		return none
	}
	parts := make([]string, 0, d.Len())
	for _, name := range d.Names() {
		switch d.Kind {
		case DetailedDependencies:
			details := d.Detailed[name]
			entry := name + ": {version: " + derefOr(details.Version, none)
			if details.URL != nil {
				entry += ", url: " + *details.URL
			}
			parts = append(parts, entry+"}")
		default:
			parts = append(parts, fmt.Sprintf("%s: %s", name, d.Simple[name]))
		}
	}
	return fmt.Sprintf("%s{%s}", d.Kind, strings.Join(parts, ", "))
}

// Equal reports full structural equality. Maps compare without regard to
// order; Authors and Keywords compare element by element. A nil slice and an
// empty slice are different: the former means the field was absent.
func (m Metadata) Equal(other Metadata) bool {
	for _, f := range Fields() {
		if !m.equalField(other, f) {
			return false
		}
	}
	return true
}

// EqualField reports whether m and other agree on a single field.
func (m Metadata) EqualField(other Metadata, f Field) bool {
	return m.equalField(other, f)
}

func (m Metadata) equalField(other Metadata, f Field) bool {
	switch f {
	case FieldName:
		return m.Name == other.Name
	case FieldVersion:
		return m.Version == other.Version
	case FieldDescription:
		return equalStringPtr(m.Description, other.Description)
	case FieldAuthors:
		return equalSeq(m.Authors, other.Authors)
	case FieldLicense:
		return equalStringPtr(m.License, other.License)
	case FieldKeywords:
		return equalSeq(m.Keywords, other.Keywords)
	case FieldDependencies:
		return m.Dependencies.Equal(other.Dependencies)
	case FieldScripts:
		if (m.Scripts == nil) != (other.Scripts == nil) {
			return false
		}
		return maps.Equal(m.Scripts, other.Scripts)
	default:
		return true
	}
}

// Value renders field f for display. Absent optional fields render as "<none>".
func (m Metadata) Value(f Field) string {
	switch f {
	case FieldName:
		return m.Name
	case FieldVersion:
		return m.Version
	case FieldDescription:
		return derefOr(m.Description, none)
	case FieldAuthors:
		return renderSeq(m.Authors)
	case FieldLicense:
		return derefOr(m.License, none)
	case FieldKeywords:
		return renderSeq(m.Keywords)
	case FieldDependencies:
		return m.Dependencies.String()
	case FieldScripts:
		if m.Scripts == nil {
			return none
		}
		names := slices.Sorted(maps.Keys(m.Scripts))
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s: %s", name, m.Scripts[name]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

const none = "<none>"

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalSeq(a, b []string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.Equal(a, b)
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func renderSeq(items []string) string {
	if items == nil {
		return none
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
