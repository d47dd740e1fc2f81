package check

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/projmeta/internal/core/checker"
	"github.com/nightconcept/projmeta/internal/core/metadata"
	"github.com/nightconcept/projmeta/internal/output"
)

// ExitDiscrepancies is the exit code of a --strict check that found discrepancies.
const ExitDiscrepancies = 2

// NewCheckCommand creates the "check" command, which cross-checks the config
// files of a project directory.
func NewCheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Reports fields on which the config files of a project disagree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"C"},
				Usage:   "Project root to check",
				Value:   ".",
				EnvVars: []string{"PROJMETA_DIR"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json or yaml",
				Value:   string(output.FormatText),
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Exit with status 2 when any discrepancy is found",
			},
		},
		Action: func(c *cli.Context) error {
			format, err := output.ParseFormat(c.String("format"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
			}
			dir := c.String("dir")

			report, err := checker.Check(c.Context, dir, checker.WithLogger(output.Logger))
			if err != nil {
				if errors.Is(err, metadata.ErrNoFilesFound) {
					return cli.Exit(fmt.Sprintf("Error: no configuration files found in %s.", dir), 1)
				}
				return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
			}

			w := c.App.Writer
			if format != output.FormatText {
				if err := output.Encode(w, format, report); err != nil {
					return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
				}
			} else {
				printReport(c, report)
			}

			if c.Bool("strict") && !report.Consistent() {
				return cli.Exit(fmt.Sprintf("%d discrepancies found.", report.Count()), ExitDiscrepancies)
			}
			return nil
		},
	}
}

func printReport(c *cli.Context, report *checker.Report) {
	w := c.App.Writer
	if len(report.Comparisons) == 0 {
		output.Line(w, fmt.Sprintf("Only one config file found (%s); nothing to compare.", report.Files[0].Path))
		return
	}

	for _, cmp := range report.Comparisons {
		if len(cmp.Discrepancies) == 0 {
			continue
		}
		output.Line(w, fmt.Sprintf("Difference found between first config file '%s' and config file '%s':",
			cmp.BasePath, cmp.OtherPath))
		for _, d := range cmp.Discrepancies {
			line := fmt.Sprintf("  %s %s vs %s", output.Field(d.Field.String()+":"), output.Value(d.Base), output.Value(d.Other))
			if d.Relation != "" {
				line += output.Dim(fmt.Sprintf(" (%s)", d.Relation))
			}
			output.Line(w, line)
		}
	}

	if report.Consistent() {
		output.Line(w, output.OK(fmt.Sprintf("All %d config files are consistent.", len(report.Files))))
		return
	}
	output.Line(w, output.Warn(fmt.Sprintf("%d discrepancies found.", report.Count())))
}
