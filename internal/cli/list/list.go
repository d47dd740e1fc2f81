package list

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/projmeta/internal/core/config"
	"github.com/nightconcept/projmeta/internal/core/document"
	"github.com/nightconcept/projmeta/internal/core/hasher"
	"github.com/nightconcept/projmeta/internal/core/mapper"
	"github.com/nightconcept/projmeta/internal/core/metadata"
	"github.com/nightconcept/projmeta/internal/output"
)

// Status of a probed config file.
const (
	StatusFound   = "found"
	StatusMissing = "missing"
	StatusError   = "error"
)

// fileDisplayInfo holds all information needed for displaying a probed file.
type fileDisplayInfo struct {
	Kind    string `json:"kind" yaml:"kind"`
	Path    string `json:"path" yaml:"path"`
	Status  string `json:"status" yaml:"status"`
	Digest  string `json:"digest,omitempty" yaml:"digest,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

func probe(f config.File) fileDisplayInfo {
	info := fileDisplayInfo{Kind: f.Kind.String(), Path: f.Path}
	doc, err := document.Read(f)
	switch {
	case errors.Is(err, metadata.ErrFileNotFound):
		info.Status = StatusMissing
	case err != nil:
		info.Status = StatusError
		info.Error = err.Error()
	default:
		m := mapper.Map(f.Kind, doc.Root)
		info.Status = StatusFound
		info.Digest = doc.Digest
		info.Name = m.Name
		info.Version = m.Version
	}
	return info
}

// ListCmd defines the structure for the 'list' command.
var ListCmd = &cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Usage:   "Displays the config files probed in a project and their status.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"C"},
			Usage:   "Project root to probe",
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

		dir := c.String("dir")
		var displayFiles []fileDisplayInfo
		for _, f := range config.Detect(dir) {
			info := probe(f)
			output.Logger.Debug("probed config file", "path", info.Path, "status", info.Status)
			displayFiles = append(displayFiles, info)
		}

		w := c.App.Writer
		if format != output.FormatText {
			if err := output.Encode(w, format, displayFiles); err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
			}
			return nil
		}

		absDir, err := filepath.Abs(dir)
		if err != nil {
			absDir = dir
		}
		output.Line(w, output.Dim(absDir))
		output.Line(w, "")
		output.Section(w, "config files")

		found := 0
		for _, info := range displayFiles {
			switch info.Status {
			case StatusFound:
				found++
				output.Line(w, fmt.Sprintf("%s %s %s %s",
					output.Field(info.Kind),
					output.OK(info.Status),
					output.Value(hasher.Short(info.Digest, 12)),
					output.Dim(info.Name+"@"+info.Version)))
			case StatusMissing:
				output.Line(w, fmt.Sprintf("%s %s", output.Field(info.Kind), output.Dim(info.Status)))
			default:
				output.Line(w, fmt.Sprintf("%s %s %s", output.Field(info.Kind), output.Warn(info.Status), info.Error))
			}
		}

		if found == 0 {
			output.Line(w, "No configuration files found.")
		}
		return nil
	},
}
