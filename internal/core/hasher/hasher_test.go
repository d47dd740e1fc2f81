// Package hasher_test contains tests for the hasher package.
package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nightconcept/projmeta/internal/core/hasher"
)

func TestDigest_EmptyContent(t *testing.T) {
	t.Parallel()
	// SHA256 of an empty string is e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855
	expected := "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	assert.Equal(t, expected, hasher.Digest([]byte{}))
}

func TestDigest_SameContentSameDigest(t *testing.T) {
	t.Parallel()
	content := []byte(`{"name":"x","version":"1.0.0"}`)
	assert.Equal(t, hasher.Digest(content), hasher.Digest(append([]byte(nil), content...)))
	assert.NotEqual(t, hasher.Digest(content), hasher.Digest([]byte(`{"name":"x","version":"1.0.1"}`)))
}

func TestShort(t *testing.T) {
	t.Parallel()
	digest := "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	assert.Equal(t, "e3b0c442", hasher.Short(digest, 8))
	assert.Equal(t, "abc", hasher.Short("abc", 8))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hasher.Short(digest, 0))
}
