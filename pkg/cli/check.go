package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/highlight-gallery/pkg/config"
	"github.com/devicelab-dev/highlight-gallery/pkg/gallery"
	"github.com/devicelab-dev/highlight-gallery/pkg/logger"
	"github.com/devicelab-dev/highlight-gallery/pkg/validator"
)

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "Inspect a video tree without writing the page",
	ArgsUsage: "[base_dir]",
	Description: `Scan the video tree the way a build would and report what it picks up:
how many videos parse, which files get skipped and why, and the
(task, model) groups the page would contain.

Examples:
  highlight-gallery check
  highlight-gallery check /data/experiments
  highlight-gallery check /data/experiments --json`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Emit the diagnostics as JSON",
		},
	},
	Action: runCheck,
}

func runCheck(c *cli.Context) error {
	if c.NArg() > 1 {
		return fmt.Errorf("expected at most one base_dir argument, got %d", c.NArg())
	}
	baseDir := c.Args().Get(0)
	if baseDir == "" {
		baseDir = "."
	}

	if logPath := c.String("log-file"); logPath != "" {
		if err := logger.Init(logPath); err != nil {
			return err
		}
		defer logger.Close()
	}

	cfg, err := config.LoadFromDir(baseDir)
	if err != nil {
		return err
	}
	layout := cfg.Layout()

	result, err := validator.New(layout).Validate(baseDir)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printCheckReport(result, layout)
	return nil
}

func printCheckReport(result *validator.Result, layout gallery.Layout) {
	fmt.Printf("%sVideo root%s %s\n", color(colorBold), color(colorReset), result.Root)
	fmt.Printf("  %sℹ%s layout: marker=%q scene=%d task=%+d\n",
		color(colorCyan), color(colorReset), layout.Marker, layout.SceneIndex, layout.TaskOffset)

	if result.RootMissing {
		fmt.Printf("  %s✗%s directory does not exist\n", color(colorRed), color(colorReset))
		return
	}

	fmt.Printf("  %s✓%s %d videos parsed\n", color(colorGreen), color(colorReset), result.Found)
	if len(result.Skipped) > 0 {
		fmt.Printf("  %s⚠%s %d files skipped\n", color(colorYellow), color(colorReset), len(result.Skipped))
		for _, skipped := range result.Skipped {
			fmt.Printf("    %s╰─%s %s (%s)\n", color(colorGray), color(colorReset), skipped.RelPath, skipped.Reason)
		}
	}

	if len(result.Groups) == 0 {
		fmt.Printf("\n%sNo groups to render%s\n", color(colorDim), color(colorReset))
		return
	}

	fmt.Printf("\n%sGroups%s\n", color(colorBold), color(colorReset))
	for _, group := range result.Groups {
		if group.Trimmed {
			fmt.Printf("  %s / %s %s(%d videos, trimmed)%s\n",
				group.Task, group.Model, color(colorYellow), group.Count, color(colorReset))
		} else {
			fmt.Printf("  %s / %s %s(%d videos)%s\n",
				group.Task, group.Model, color(colorGray), group.Count, color(colorReset))
		}
	}
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// colorsEnabled determines if ANSI colors should be used
var colorsEnabled = true

func init() {
	// Respect NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		colorsEnabled = false
		return
	}
	// Check if stdout is a terminal
	if fileInfo, err := os.Stdout.Stat(); err == nil {
		if (fileInfo.Mode() & os.ModeCharDevice) == 0 {
			colorsEnabled = false
		}
	}
}

// color returns the color code if colors are enabled, empty string otherwise
func color(c string) string {
	if colorsEnabled {
		return c
	}
	return ""
}
