// Package metadata_test contains tests for the metadata package.
package metadata_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/projmeta/internal/core/metadata"
)

func sampleMetadata() metadata.Metadata {
	return metadata.Metadata{
		Name:        "sample",
		Version:     "1.0.0",
		Description: metadata.StringPtr("A sample project"),
		Authors:     []string{"Jane", "John"},
		License:     metadata.StringPtr("MIT"),
		Keywords:    []string{"a", "b"},
		Dependencies: metadata.NewSimpleDependencies(map[string]string{
			"left-pad": "^1.0.0",
			"lodash":   "4.17.21",
		}),
		Scripts: map[string]string{"build": "tsc", "test": "jest"},
	}
}

func TestMetadataEqual_Identical(t *testing.T) {
	t.Parallel()
	a := sampleMetadata()
	b := sampleMetadata()
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestMetadataEqual_MapOrderInsensitive(t *testing.T) {
	t.Parallel()
	a := sampleMetadata()
	b := sampleMetadata()
	b.Scripts = map[string]string{"test": "jest", "build": "tsc"}
	assert.True(t, a.Equal(b))
}

func TestMetadataEqual_SequenceOrderSensitive(t *testing.T) {
	t.Parallel()
	a := sampleMetadata()
	b := sampleMetadata()
	b.Authors = []string{"John", "Jane"}
	assert.False(t, a.Equal(b))
	assert.False(t, a.EqualField(b, metadata.FieldAuthors))
	assert.True(t, a.EqualField(b, metadata.FieldKeywords))
}

func TestMetadataEqual_NilVersusEmpty(t *testing.T) {
	t.Parallel()
	a := metadata.Metadata{Name: "x", Version: "1"}
	b := metadata.Metadata{Name: "x", Version: "1", Keywords: []string{}}
	assert.False(t, a.Equal(b), "absent keywords should differ from an empty keyword list")

	c := metadata.Metadata{Name: "x", Version: "1", Scripts: map[string]string{}}
	assert.False(t, a.Equal(c), "absent scripts should differ from an empty scripts table")
}

func TestDependenciesEqual_VariantMatters(t *testing.T) {
	t.Parallel()
	simple := metadata.NewSimpleDependencies(map[string]string{})
	detailed := metadata.NewDetailedDependencies(map[string]metadata.DependencyDetails{})
	assert.False(t, simple.Equal(detailed))
	assert.True(t, simple.Equal(metadata.NewSimpleDependencies(nil)))

	var missing *metadata.Dependencies
	assert.True(t, missing.Equal(nil))
	assert.False(t, missing.Equal(simple))
}

func TestDependenciesEqual_NilInnerMapIsEmpty(t *testing.T) {
	t.Parallel()
	handBuilt := &metadata.Dependencies{Kind: metadata.SimpleDependencies}
	assert.True(t, handBuilt.Equal(metadata.NewSimpleDependencies(map[string]string{})))
	assert.False(t, handBuilt.Equal(nil), "a present table never equals an absent one")
	assert.Equal(t, 0, handBuilt.Len())

	detailed := &metadata.Dependencies{Kind: metadata.DetailedDependencies}
	assert.True(t, detailed.Equal(metadata.NewDetailedDependencies(nil)))
	assert.False(t, detailed.Equal(handBuilt))
}

func TestDependenciesEqual_Detailed(t *testing.T) {
	t.Parallel()
	a := metadata.NewDetailedDependencies(map[string]metadata.DependencyDetails{
		"serde": {Version: metadata.StringPtr("1.0")},
		"rand":  {},
	})
	b := metadata.NewDetailedDependencies(map[string]metadata.DependencyDetails{
		"rand":  {},
		"serde": {Version: metadata.StringPtr("1.0")},
	})
	assert.True(t, a.Equal(b))

	b.Detailed["rand"] = metadata.DependencyDetails{Version: metadata.StringPtr("0.8")}
	assert.False(t, a.Equal(b))
}

func TestDependenciesAccessors(t *testing.T) {
	t.Parallel()
	deps := metadata.NewDetailedDependencies(map[string]metadata.DependencyDetails{
		"serde":  {Version: metadata.StringPtr("1.0")},
		"anyhow": {},
	})
	assert.Equal(t, 2, deps.Len())
	assert.Equal(t, []string{"anyhow", "serde"}, deps.Names())

	spec, ok := deps.Spec("serde")
	assert.True(t, ok)
	assert.Equal(t, "1.0", spec)

	_, ok = deps.Spec("anyhow")
	assert.False(t, ok, "an entry without version has no spec")

	assert.Equal(t, "detailed{anyhow: {version: <none>}, serde: {version: 1.0}}", deps.String())
}

func TestMetadataValue(t *testing.T) {
	t.Parallel()
	m := sampleMetadata()
	assert.Equal(t, "sample", m.Value(metadata.FieldName))
	assert.Equal(t, `["Jane", "John"]`, m.Value(metadata.FieldAuthors))
	assert.Equal(t, "simple{left-pad: ^1.0.0, lodash: 4.17.21}", m.Value(metadata.FieldDependencies))
	assert.Equal(t, "{build: tsc, test: jest}", m.Value(metadata.FieldScripts))

	empty := metadata.Metadata{}
	assert.Equal(t, "<none>", empty.Value(metadata.FieldDescription))
	assert.Equal(t, "<none>", empty.Value(metadata.FieldKeywords))
	assert.Equal(t, "<none>", empty.Value(metadata.FieldDependencies))
	assert.Equal(t, "<none>", empty.Value(metadata.FieldScripts))
}

func TestFieldsOrder(t *testing.T) {
	t.Parallel()
	var names []string
	for _, f := range metadata.Fields() {
		names = append(names, f.String())
	}
	assert.Equal(t, []string{
		"name", "version", "description", "authors",
		"license", "keywords", "dependencies", "scripts",
	}, names)
}

func TestSourceError(t *testing.T) {
	t.Parallel()
	cause := fmt.Errorf("open: %w", fs.ErrNotExist)
	err := metadata.NewSourceError(metadata.ErrFileNotFound, "/tmp/package.json", cause)

	assert.EqualError(t, err, "file not found: /tmp/package.json")
	assert.True(t, errors.Is(err, metadata.ErrFileNotFound))
	assert.False(t, errors.Is(err, metadata.ErrRead))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "cause should stay reachable")

	var srcErr *metadata.SourceError
	require.True(t, errors.As(fmt.Errorf("batch: %w", err), &srcErr))
	assert.Equal(t, "/tmp/package.json", srcErr.Path)
}
