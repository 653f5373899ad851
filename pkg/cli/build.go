package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/highlight-gallery/pkg/config"
	"github.com/devicelab-dev/highlight-gallery/pkg/gallery"
	"github.com/devicelab-dev/highlight-gallery/pkg/logger"
)

// emptyPagePlaceholder goes to stdout instead of a document when the scan
// finds nothing.
const emptyPagePlaceholder = "<!-- No videos found -->"

// runBuild is the root action: scan the tree, group the videos, emit one
// page. Progress goes to stderr so the document can be piped from stdout.
func runBuild(c *cli.Context) error {
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

	result, err := gallery.Scan(baseDir, cfg.Layout())
	if err != nil {
		return err
	}

	if result.RootMissing {
		fmt.Fprintf(os.Stderr, "Videos directory not found at %s\n", result.Root)
	} else {
		fmt.Fprintf(os.Stderr, "Searching for videos in %s\n", result.Root)
	}

	if len(result.Skipped) > 0 {
		logger.Warn("Skipped %d files under %s", len(result.Skipped), result.Root)
	}

	if len(result.Videos) == 0 {
		fmt.Println(emptyPagePlaceholder)
		return nil
	}

	groups := gallery.GroupVideos(result.Videos)

	if outPath := c.String("out"); outPath != "" {
		if err := gallery.WritePage(groups, outPath); err != nil {
			logger.Error("Failed to write %s: %v", outPath, err)
			return err
		}
		logger.Info("Wrote %d groups to %s", len(groups), outPath)
		fmt.Fprintf(os.Stderr, "Wrote HTML to %s\n", outPath)
		return nil
	}

	page, err := gallery.RenderPage(groups)
	if err != nil {
		return err
	}
	fmt.Println(page)
	return nil
}
