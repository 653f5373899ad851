// Package validator inspects a video tree and reports what a gallery build
// would and would not pick up, without rendering anything.
package validator

import (
	"github.com/devicelab-dev/highlight-gallery/pkg/gallery"
)

// GroupStat summarizes one (task, model) group of the prospective page.
type GroupStat struct {
	Task    string `json:"task"`
	Model   string `json:"model"`
	Count   int    `json:"count"`             // videos the page would show
	Trimmed bool   `json:"trimmed,omitempty"` // true when the trim rule dropped a video
}

// Result contains the tree diagnostics.
type Result struct {
	Root        string                `json:"root"`
	RootMissing bool                  `json:"rootMissing"`
	Found       int                   `json:"found"` // parseable videos discovered
	Skipped     []gallery.SkippedFile `json:"skipped,omitempty"`
	Groups      []GroupStat           `json:"groups"`
}

// HasVideos reports whether a build would render at least one video.
func (r *Result) HasVideos() bool {
	return r.Found > 0
}

// Validator checks a video tree against one path layout.
type Validator struct {
	layout gallery.Layout
}

// New creates a new Validator.
func New(layout gallery.Layout) *Validator {
	return &Validator{layout: layout}
}

// Validate scans the base dir and summarizes what a gallery build would
// produce from it.
func (v *Validator) Validate(baseDir string) (*Result, error) {
	scan, err := gallery.Scan(baseDir, v.layout)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Root:        scan.Root,
		RootMissing: scan.RootMissing,
		Found:       len(scan.Videos),
		Skipped:     scan.Skipped,
	}

	type key struct {
		task  string
		model string
	}
	rawCounts := make(map[key]int)
	for _, video := range scan.Videos {
		rawCounts[key{video.Task, video.Model}]++
	}

	for _, g := range gallery.GroupVideos(scan.Videos) {
		result.Groups = append(result.Groups, GroupStat{
			Task:    g.Task,
			Model:   g.Model,
			Count:   len(g.Videos),
			Trimmed: rawCounts[key{g.Task, g.Model}] != len(g.Videos),
		})
	}

	return result, nil
}
