// Package checker compares the records extracted from the config files of one
// project and reports the fields on which they disagree.
package checker

import (
	"context"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"

	"github.com/nightconcept/projmeta/internal/core/config"
	"github.com/nightconcept/projmeta/internal/core/loader"
	"github.com/nightconcept/projmeta/internal/core/metadata"
)

// Relation describes how a differing version compares semantically to the
// reference version.
type Relation string

const (
	RelationOlder      Relation = "older"
	RelationNewer      Relation = "newer"
	RelationEquivalent Relation = "equivalent"
)

// Discrepancy is one field on which two records differ.
type Discrepancy struct {
	Field metadata.Field `json:"field" yaml:"field"`
	Base  string         `json:"base" yaml:"base"`
	Other string         `json:"other" yaml:"other"`
	// Relation is only set for version discrepancies where both sides are
	// valid semantic versions.
	Relation Relation `json:"relation,omitempty" yaml:"relation,omitempty"`
}

// Comparison holds the discrepancies between the reference file and one
// other file.
type Comparison struct {
	Base          config.File   `json:"-" yaml:"-"`
	Other         config.File   `json:"-" yaml:"-"`
	BasePath      string        `json:"base_path" yaml:"base_path"`
	OtherPath     string        `json:"other_path" yaml:"other_path"`
	Discrepancies []Discrepancy `json:"discrepancies" yaml:"discrepancies"`
}

// Report is the outcome of a consistency check.
type Report struct {
	Files       []config.File `json:"-" yaml:"-"`
	Comparisons []Comparison  `json:"comparisons" yaml:"comparisons"`
}

// Count returns the total number of discrepancies.
func (r *Report) Count() int {
	n := 0
	for _, c := range r.Comparisons {
		n += len(c.Discrepancies)
	}
	return n
}

// Consistent reports whether no discrepancies were found.
func (r *Report) Consistent() bool {
	return r.Count() == 0
}

// Option configures a check.
type Option func(*options)

type options struct {
	logger     *log.Logger
	loaderOpts []loader.Option
}

// WithLogger sets the logger for discrepancies and for the underlying loader.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
			o.loaderOpts = append(o.loaderOpts, loader.WithLogger(logger))
		}
	}
}

// WithLoaderOptions passes options through to the batch loader.
func WithLoaderOptions(opts ...loader.Option) Option {
	return func(o *options) {
		o.loaderOpts = append(o.loaderOpts, opts...)
	}
}

// Compare returns one Discrepancy per field on which base and other differ,
// in report field order. Equal records yield none.
func Compare(base, other metadata.Metadata) []Discrepancy {
	var out []Discrepancy
	for _, f := range metadata.Fields() {
		if base.EqualField(other, f) {
			continue
		}
		d := Discrepancy{
			Field: f,
			Base:  base.Value(f),
			Other: other.Value(f),
		}
		if f == metadata.FieldVersion {
			d.Relation = versionRelation(base.Version, other.Version)
		}
		out = append(out, d)
	}
	return out
}

func versionRelation(base, other string) Relation {
	bv, err := semver.NewVersion(base)
	if err != nil {
		return ""
	}
	ov, err := semver.NewVersion(other)
	if err != nil {
		return ""
	}
	switch ov.Compare(bv) {
	case -1:
		return RelationOlder
	case 1:
		return RelationNewer
	default:
		return RelationEquivalent
	}
}

// Check loads the canonical config files under root and compares the first
// record found against every later one. Loader errors, including
// metadata.ErrNoFilesFound, are returned unchanged. Discrepancies never cause
// an error.
func Check(ctx context.Context, root string, opts ...Option) (*Report, error) {
	return CheckFiles(ctx, config.Detect(root), opts...)
}

// CheckFiles is Check over an explicit list of files.
func CheckFiles(ctx context.Context, files []config.File, opts ...Option) (*Report, error) {
	o := &options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(o)
	}

	results, err := loader.Load(ctx, files, o.loaderOpts...)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, r := range results {
		report.Files = append(report.Files, r.File)
	}
	if len(results) < 2 {
		return report, nil
	}

	base := results[0]
	for _, other := range results[1:] {
		c := Comparison{
			Base:          base.File,
			Other:         other.File,
			BasePath:      base.File.Path,
			OtherPath:     other.File.Path,
			Discrepancies: Compare(base.Metadata, other.Metadata),
		}
		for _, d := range c.Discrepancies {
			o.logger.Debug("config files disagree",
				"field", d.Field,
				"base", d.Base,
				"other", d.Other,
				"base_path", c.BasePath,
				"other_path", c.OtherPath,
			)
		}
		report.Comparisons = append(report.Comparisons, c)
	}
	return report, nil
}
