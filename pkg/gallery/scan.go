package gallery

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/devicelab-dev/highlight-gallery/pkg/core"
	"github.com/devicelab-dev/highlight-gallery/pkg/logger"
)

// Scan locates every video file under the base dir's video root and parses
// each relative path into a Video record. A missing root is a valid empty
// state, not an error. Paths the layout cannot parse land in Skipped.
func Scan(baseDir string, layout Layout) (*ScanResult, error) {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, core.ErrScanWalk.WithCause(err)
	}

	root := filepath.Join(base, filepath.FromSlash(WebRoot))
	result := &ScanResult{Root: root}

	if _, err := os.Stat(root); os.IsNotExist(err) {
		result.RootMissing = true
		return result, nil
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != VideoFileName {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		video, reason := parseRelPath(rel, layout)
		if reason != "" {
			logger.Debug("Skipping %s: %s", rel, reason)
			result.Skipped = append(result.Skipped, SkippedFile{RelPath: rel, Reason: reason})
			return nil
		}

		video.AbsPath = path
		result.Videos = append(result.Videos, video)
		return nil
	})
	if walkErr != nil {
		return nil, core.ErrScanWalk.WithCause(walkErr)
	}

	logger.Debug("Scan found %d videos under %s (%d skipped)", len(result.Videos), root, len(result.Skipped))
	return result, nil
}

// parseRelPath turns a root-relative, slash-separated video path into a
// Video. An empty reason means the parse succeeded.
func parseRelPath(rel string, layout Layout) (Video, SkipReason) {
	segments := strings.Split(rel, "/")
	if len(segments) < minPathSegments {
		return Video{}, SkipTooShallow
	}

	modelIdx := -1
	for i, segment := range segments {
		if strings.Contains(segment, layout.Marker) {
			modelIdx = i
			break
		}
	}
	if modelIdx == -1 {
		return Video{}, SkipNoMarker
	}

	taskIdx := modelIdx + layout.TaskOffset
	runIdx := modelIdx + 1
	if layout.SceneIndex < 0 || layout.SceneIndex >= len(segments) ||
		taskIdx < 0 || taskIdx >= len(segments) ||
		runIdx >= len(segments) {
		return Video{}, SkipBadLayout
	}

	runID := segments[runIdx]
	return Video{
		WebPath:    WebRoot + "/" + rel,
		Scene:      segments[layout.SceneIndex],
		Task:       segments[taskIdx],
		Model:      segments[modelIdx],
		RunID:      runID,
		IterName:   runID,
		IterNumber: iterNumber(runID),
	}, ""
}

// iterNumber extracts the first contiguous run of ASCII digits from the run
// id. Run ids without digits sort as iteration 0.
func iterNumber(runID string) int {
	for i := 0; i < len(runID); i++ {
		if runID[i] < '0' || runID[i] > '9' {
			continue
		}
		j := i
		for j < len(runID) && runID[j] >= '0' && runID[j] <= '9' {
			j++
		}
		n, err := strconv.Atoi(runID[i:j])
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
