package show

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/projmeta/internal/core/config"
	"github.com/nightconcept/projmeta/internal/core/loader"
	"github.com/nightconcept/projmeta/internal/core/metadata"
	"github.com/nightconcept/projmeta/internal/output"
)

// entry is one extracted file in JSON/YAML output.
type entry struct {
	Kind     string            `json:"kind" yaml:"kind"`
	Path     string            `json:"path" yaml:"path"`
	Digest   string            `json:"digest" yaml:"digest"`
	Metadata metadata.Metadata `json:"metadata" yaml:"metadata"`
}

// NewShowCommand creates the "show" command, which extracts the unified
// metadata record from one config file or from every config file in a directory.
func NewShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Extracts project metadata from a config file, or from every config file in --dir",
		ArgsUsage: "[<kind> <path>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"C"},
				Usage:   "Project root to scan when no file is given",
				Value:   ".",
				EnvVars: []string{"PROJMETA_DIR"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json or yaml",
				Value:   string(output.FormatText),
			},
		},
		Action: func(c *cli.Context) error {
			format, err := output.ParseFormat(c.String("format"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
			}

			switch c.NArg() {
			case 0:
				return showDetected(c, c.String("dir"), format)
			case 2:
				kind, err := config.ParseKind(c.Args().Get(0))
				if err != nil {
					return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
				}
				return showFile(c, config.NewFile(kind, c.Args().Get(1)), format)
			default:
				return cli.Exit("Error: expected either no arguments or <kind> <path>.", 1)
			}
		},
	}
}

func showFile(c *cli.Context, f config.File, format output.Format) error {
	m, err := loader.FromConfig(f)
	if err != nil {
		if errors.Is(err, metadata.ErrFileNotFound) {
			return cli.Exit(fmt.Sprintf("Error: %s not found.", f.Path), 1)
		}
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	w := c.App.Writer
	if format != output.FormatText {
		if err := output.Encode(w, format, m); err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		return nil
	}
	output.Header(w, m.Name, m.Version, f.Path)
	output.Metadata(w, m)
	return nil
}

func showDetected(c *cli.Context, dir string, format output.Format) error {
	results, err := loader.FromDetected(c.Context, dir, loader.WithLogger(output.Logger))
	if err != nil {
		if errors.Is(err, metadata.ErrNoFilesFound) {
			return cli.Exit(fmt.Sprintf("Error: no configuration files found in %s.", dir), 1)
		}
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	w := c.App.Writer
	if format != output.FormatText {
		entries := make([]entry, 0, len(results))
		for _, r := range results {
			entries = append(entries, entry{
				Kind:     r.File.Kind.String(),
				Path:     r.File.Path,
				Digest:   r.Digest,
				Metadata: r.Metadata,
			})
		}
		if err := output.Encode(w, format, entries); err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		return nil
	}

	for i, r := range results {
		if i > 0 {
			output.Line(w, "")
		}
		output.Header(w, r.Metadata.Name, r.Metadata.Version, r.File.Path)
		output.Metadata(w, r.Metadata)
	}
	return nil
}
