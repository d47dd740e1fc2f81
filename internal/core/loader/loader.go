// Package loader turns config file references into metadata records, one
// file at a time or as a batch.
package loader

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/nightconcept/projmeta/internal/core/config"
	"github.com/nightconcept/projmeta/internal/core/document"
	"github.com/nightconcept/projmeta/internal/core/mapper"
	"github.com/nightconcept/projmeta/internal/core/metadata"
)

// DefaultConcurrency bounds how many files a batch reads at once.
const DefaultConcurrency = 4

// Result is a record together with the file it was extracted from.
type Result struct {
	File     config.File
	Metadata metadata.Metadata
	Digest   string
}

// Option configures a batch load.
type Option func(*options)

type options struct {
	logger      *log.Logger
	concurrency int
}

// WithLogger sets the logger used to report skipped and loaded files.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency bounds parallel reads. Values below 1 mean sequential.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:      log.New(io.Discard),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// FromConfig reads and maps a single config file. Errors are the reader's
// *metadata.SourceError values, so a missing file (metadata.ErrFileNotFound)
// can be told apart from a broken one.
func FromConfig(f config.File) (metadata.Metadata, error) {
	res, err := load(f)
	if err != nil {
		return metadata.Metadata{}, err
	}
	return res.Metadata, nil
}

func load(f config.File) (Result, error) {
	doc, err := document.Read(f)
	if err != nil {
		return Result{}, err
	}
	return Result{
		File:     f,
		Metadata: mapper.Map(f.Kind, doc.Root),
		Digest:   doc.Digest,
	}, nil
}

type outcome struct {
	res Result
	err error
}

// Load reads every file in files and returns the records in the same
// relative order. Missing files are skipped. Any other error aborts the batch
// and is returned unchanged; when several files fail, the first one in input
// order wins. If no file could be loaded the error is metadata.ErrNoFilesFound.
func Load(ctx context.Context, files []config.File, opts ...Option) ([]Result, error) {
	o := newOptions(opts)

	outcomes := make([]outcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := load(f)
			outcomes[i] = outcome{res: res, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files))
	for i, out := range outcomes {
		if out.err != nil {
			if errors.Is(out.err, metadata.ErrFileNotFound) {
				o.logger.Debug("config file not present, skipping", "kind", files[i].Kind, "path", files[i].Path)
				continue
			}
			o.logger.Debug("aborting batch", "path", files[i].Path, "err", out.err)
			return nil, out.err
		}
		o.logger.Debug("loaded config file", "kind", out.res.File.Kind, "path", out.res.File.Path, "name", out.res.Metadata.Name)
		results = append(results, out.res)
	}

	if len(results) == 0 {
		return nil, metadata.ErrNoFilesFound
	}
	return results, nil
}

// FromDetected loads the canonical config files under root.
func FromDetected(ctx context.Context, root string, opts ...Option) ([]Result, error) {
	return Load(ctx, config.Detect(root), opts...)
}

// Records returns just the records of results, in order.
func Records(results []Result) []metadata.Metadata {
	records := make([]metadata.Metadata, 0, len(results))
	for _, r := range results {
		records = append(records, r.Metadata)
	}
	return records
}
