// Package gallery turns a tree of experiment output videos into a static,
// self-contained gallery page.
//
// Pipeline:
//   - Scan: walk <base>/static/videos/highlight-videos for sim.mp4 files and
//     parse each relative path into a Video record
//   - GroupVideos: bucket records by (task, model), sort, apply the trim rule
//   - RenderPage / WritePage: emit one HTML document with client-side
//     task/model filtering
//
// Library code never prints; the CLI owns all console output.
package gallery

// VideoFileName is the file name discovery matches on.
const VideoFileName = "sim.mp4"

// WebRoot is the video root, relative to both the base dir and the deployed
// page. It prefixes every web path.
const WebRoot = "static/videos/highlight-videos"

// minPathSegments is the minimum relative segment count for a parseable path.
const minPathSegments = 6

// Video is one discovered video file.
type Video struct {
	WebPath    string `json:"webPath"`           // src attribute value, relative to the deployed page
	AbsPath    string `json:"absPath,omitempty"` // diagnostics only
	Scene      string `json:"scene"`
	Task       string `json:"task"`
	Model      string `json:"model"`
	RunID      string `json:"runId"`
	IterName   string `json:"iterName"`   // currently the run id verbatim
	IterNumber int    `json:"iterNumber"` // first digit run in the run id, 0 if none
}

// Group is the ordered set of videos sharing a (task, model) pair.
type Group struct {
	Task   string  `json:"task"`
	Model  string  `json:"model"`
	Videos []Video `json:"videos"`
}

// Layout maps relative path segments to record fields around one anchor: the
// first segment containing Marker is the model. The run id is always the
// segment immediately after the model.
type Layout struct {
	Marker     string // substring identifying the model segment
	SceneIndex int    // segment index of the scene
	TaskOffset int    // task position relative to the model segment
}

// DefaultLayout returns the layout of the standard highlight-videos tree:
// scene is the second segment, task immediately precedes the model.
func DefaultLayout() Layout {
	return Layout{
		Marker:     "gpt-5",
		SceneIndex: 1,
		TaskOffset: -1,
	}
}

// SkipReason says why a sim.mp4 path was excluded from the gallery.
type SkipReason string

// Skip reasons.
const (
	SkipTooShallow SkipReason = "path too shallow"    // fewer than minPathSegments segments
	SkipNoMarker   SkipReason = "no model segment"    // no segment contains the marker
	SkipBadLayout  SkipReason = "layout out of range" // a layout index misses this path
)

// SkippedFile records one excluded path for diagnostics.
type SkippedFile struct {
	RelPath string     `json:"relPath"`
	Reason  SkipReason `json:"reason"`
}

// ScanResult is everything one walk of the video root produced.
type ScanResult struct {
	Root        string        `json:"root"` // absolute video root that was searched
	RootMissing bool          `json:"rootMissing"`
	Videos      []Video       `json:"videos"`
	Skipped     []SkippedFile `json:"skipped,omitempty"`
}
