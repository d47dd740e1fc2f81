// Package mapper projects parsed config documents into metadata.Metadata.
//
// Each supported format has one projection. Projections are total: a missing
// field, or one of the wrong type, degrades to its zero value (empty string for
// name and version, nil for the optional fields) and never to an error.
package mapper

import (
	"github.com/nightconcept/projmeta/internal/core/config"
	"github.com/nightconcept/projmeta/internal/core/document"
	"github.com/nightconcept/projmeta/internal/core/metadata"
)

// Func projects the root of a parsed document into a record.
type Func func(root document.Node) metadata.Metadata

var mappers = map[config.Kind]Func{
	config.PackageJSON:   PackageJSON,
	config.CargoTOML:     CargoTOML,
	config.DenoJSON:      DenoJSON,
	config.PyprojectTOML: PyprojectTOML,
}

// For returns the projection registered for kind.
func For(kind config.Kind) (Func, bool) {
	fn, ok := mappers[kind]
	return fn, ok
}

// Map projects root with the projection for kind. Unknown kinds yield an
// empty record.
func Map(kind config.Kind, root document.Node) metadata.Metadata {
	fn, ok := For(kind)
	if !ok {
		return metadata.Metadata{}
	}
	return fn(root)
}

// text returns the string at n, or "" when absent or not a string.
func text(n document.Node) string {
	s, _ := n.Text()
	return s
}

// optionalText returns a pointer to the string at n, or nil.
func optionalText(n document.Node) *string {
	s, ok := n.Text()
	if !ok {
		return nil
	}
	return &s
}

// textList returns the array at n with non-string elements coerced to "".
func textList(n document.Node) []string {
	elems, ok := n.Array()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, elem := range elems {
		out = append(out, text(elem))
	}
	return out
}

// textMap returns the object at n as name -> string, coercing non-string values to "".
func textMap(n document.Node) map[string]string {
	entries, ok := n.Object()
	if !ok {
		return nil
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key] = text(e.Value)
	}
	return out
}

// simpleDependencies reads a flat name -> version spec object.
func simpleDependencies(n document.Node) *metadata.Dependencies {
	deps := textMap(n)
	if deps == nil {
		return nil
	}
	return metadata.NewSimpleDependencies(deps)
}

// detailedDependencies reads a table of tables. Each entry's version comes
// from a nested "version" string when the entry is a table; URL is never set
// by the formats in scope.
func detailedDependencies(n document.Node) *metadata.Dependencies {
	entries, ok := n.Object()
	if !ok {
		return nil
	}
	deps := make(map[string]metadata.DependencyDetails, len(entries))
	for _, e := range entries {
		deps[e.Key] = metadata.DependencyDetails{
			Version: optionalText(e.Value.Get("version")),
		}
	}
	return metadata.NewDetailedDependencies(deps)
}
