package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/projmeta/internal/cli/check"
	"github.com/nightconcept/projmeta/internal/cli/list"
	"github.com/nightconcept/projmeta/internal/cli/self"
	"github.com/nightconcept/projmeta/internal/cli/show"
	"github.com/nightconcept/projmeta/internal/output"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "v0.1.0"

func main() {
	app := &cli.App{
		Name:    "projmeta",
		Usage:   "Extract and cross-check project metadata from package.json, Cargo.toml, deno.json and pyproject.toml",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable debug logging on stderr",
				EnvVars: []string{"PROJMETA_VERBOSE"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(c *cli.Context) error {
			output.SetupLogging(c.Bool("verbose"))
			if c.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			// Default action if no command is specified
			_ = cli.ShowAppHelp(c)
			return nil
		},
		Commands: []*cli.Command{
			show.NewShowCommand(),
			list.ListCmd,
			check.NewCheckCommand(),
			self.NewSelfCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
