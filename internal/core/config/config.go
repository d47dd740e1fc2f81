package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Conventional config filenames probed in a project root.
const (
	PackageJSONName   = "package.json"
	CargoTomlName     = "Cargo.toml"
	DenoJSONName      = "deno.json"
	PyprojectTomlName = "pyproject.toml"
)

// Kind identifies the format of a config file.
type Kind int

const (
	KindUnknown Kind = iota
	PackageJSON
	CargoTOML
	DenoJSON
	PyprojectTOML
)

// Family groups kinds by the generic parser they need.
type Family int

const (
	FamilyJSON Family = iota + 1
	FamilyTOML
)

// String returns the string representation of Family
func (f Family) String() string {
	switch f {
	case FamilyJSON:
		return "json"
	case FamilyTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// String returns the conventional filename for the kind.
func (k Kind) String() string {
	switch k {
	case PackageJSON:
		return PackageJSONName
	case CargoTOML:
		return CargoTomlName
	case DenoJSON:
		return DenoJSONName
	case PyprojectTOML:
		return PyprojectTomlName
	default:
		return "unknown"
	}
}

// Family returns the parser family for the kind.
func (k Kind) Family() Family {
	switch k {
	case PackageJSON, DenoJSON:
		return FamilyJSON
	case CargoTOML, PyprojectTOML:
		return FamilyTOML
	default:
		return 0
	}
}

// Kinds returns the supported kinds in detection order.
func Kinds() []Kind {
	return []Kind{PackageJSON, CargoTOML, DenoJSON, PyprojectTOML}
}

// ParseKind accepts a conventional filename ("Cargo.toml") or a short alias
// ("cargo"), case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "package.json", "package", "npm":
		return PackageJSON, nil
	case "cargo.toml", "cargo":
		return CargoTOML, nil
	case "deno.json", "deno":
		return DenoJSON, nil
	case "pyproject.toml", "pyproject", "python":
		return PyprojectTOML, nil
	}
	return KindUnknown, fmt.Errorf("unknown config kind '%s' (expected one of package, cargo, deno, pyproject)", s)
}

// File references a config file of a given kind. It carries no content; the
// file is read only when a record is requested.
type File struct {
	Kind Kind
	Path string
}

// NewFile returns a reference to the config file at path.
func NewFile(kind Kind, path string) File {
	return File{Kind: kind, Path: path}
}

// String renders the reference as "kind (path)".
func (f File) String() string {
	return fmt.Sprintf("%s (%s)", f.Kind, f.Path)
}

// Detect returns references to the canonical config files under root, in the
// fixed order package.json, Cargo.toml, deno.json, pyproject.toml. The files
// are not checked for existence.
func Detect(root string) []File {
	kinds := Kinds()
	files := make([]File, 0, len(kinds))
	for _, kind := range kinds {
		files = append(files, NewFile(kind, filepath.Join(root, kind.String())))
	}
	return files
}
