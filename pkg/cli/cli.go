// Package cli provides the command-line interface for highlight-gallery.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "write HTML to this file (default: stdout)",
	},
	&cli.StringFlag{
		Name:  "log-file",
		Usage: "append debug logs to this file",
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:      "highlight-gallery",
		Usage:     "Build a static gallery page from experiment highlight videos",
		Version:   Version,
		ArgsUsage: "[base_dir]",
		Description: `highlight-gallery walks <base_dir>/static/videos/highlight-videos for
sim.mp4 recordings, groups them by task and model, and emits one
self-contained HTML page with client-side task/model filtering.

Examples:
  highlight-gallery
  highlight-gallery /data/experiments -o gallery.html
  highlight-gallery check /data/experiments --json`,
		Flags:  GlobalFlags,
		Action: runBuild,
		Commands: []*cli.Command{
			checkCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
