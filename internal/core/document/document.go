// Package document reads config files from disk and parses them into a
// generic tree, without applying any schema.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/gjson"

	"github.com/nightconcept/projmeta/internal/core/config"
	"github.com/nightconcept/projmeta/internal/core/hasher"
	"github.com/nightconcept/projmeta/internal/core/metadata"
)

// Document is a parsed config file.
type Document struct {
	File   config.File
	Root   Node
	Digest string // hasher.Digest of the raw content
}

// Read loads the file referenced by f and parses it according to its kind.
// A file that cannot be opened yields metadata.ErrFileNotFound; one that is
// opened but cannot be read yields metadata.ErrRead; malformed content yields
// metadata.ErrJSONParse or metadata.ErrTOMLParse. All are *metadata.SourceError.
func Read(f config.File) (*Document, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, metadata.NewSourceError(metadata.ErrFileNotFound, f.Path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, metadata.NewSourceError(metadata.ErrRead, f.Path, err)
	}

	root, err := Parse(f.Kind, data)
	if err != nil {
		return nil, metadata.NewSourceError(parseErrorKind(f.Kind), f.Path, err)
	}

	return &Document{
		File:   f,
		Root:   root,
		Digest: hasher.Digest(data),
	}, nil
}

// Parse parses raw content as the family of kind. Any well-formed document
// is accepted.
func Parse(kind config.Kind, data []byte) (Node, error) {
	switch kind.Family() {
	case config.FamilyJSON:
		return ParseJSON(data)
	case config.FamilyTOML:
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported config kind %s", kind)
	}
}

// ParseJSON validates data as JSON and returns its root value.
func ParseJSON(data []byte) (Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON document")
	}
	return jsonNode{r: gjson.ParseBytes(data)}, nil
}

// ParseTOML decodes data into a generic table and returns it as the root value.
func ParseTOML(data []byte) (Node, error) {
	var table map[string]any
	if _, err := toml.Decode(string(data), &table); err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	if table == nil {
		table = make(map[string]any)
	}
	return tomlNode{v: table, exists: true}, nil
}

func parseErrorKind(kind config.Kind) error {
	if kind.Family() == config.FamilyTOML {
		return metadata.ErrTOMLParse
	}
	return metadata.ErrJSONParse
}
