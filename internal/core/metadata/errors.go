package metadata

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these; path-carrying kinds arrive wrapped
// in a *SourceError.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrRead         = errors.New("failed to read file")
	ErrJSONParse    = errors.New("failed to parse JSON")
	ErrTOMLParse    = errors.New("failed to parse TOML")
	ErrNoFilesFound = errors.New("no configuration files found")
)

// SourceError ties an error kind to the config file it was raised for.
type SourceError struct {
	Kind error
	Path string
	Err  error
}

// NewSourceError returns a *SourceError of the given kind for path.
func NewSourceError(kind error, path string, cause error) *SourceError {
	return &SourceError{Kind: kind, Path: path, Err: cause}
}

// Error implements the error interface
func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// Is matches the error kind.
func (e *SourceError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause.
func (e *SourceError) Unwrap() error {
	return e.Err
}
