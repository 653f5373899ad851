package gallery

import (
	"os"
	"path/filepath"
	"testing"
)

// writeVideoFiles creates the given root-relative files under the base dir's
// video root.
func writeVideoFiles(t *testing.T, baseDir string, relPaths ...string) {
	t.Helper()
	root := filepath.Join(baseDir, filepath.FromSlash(WebRoot))
	for _, rel := range relPaths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(full, []byte("video"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
}

func TestScan_ParsesStandardTree(t *testing.T) {
	base := t.TempDir()
	writeVideoFiles(t, base, "exp-alpha/scene-kitchen/batch-1/stack-blocks/gpt-5-mini/iter3/sim.mp4")

	result, err := Scan(base, DefaultLayout())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if result.RootMissing {
		t.Error("RootMissing = true, want false")
	}
	if len(result.Skipped) != 0 {
		t.Errorf("len(Skipped) = %d, want 0", len(result.Skipped))
	}
	if len(result.Videos) != 1 {
		t.Fatalf("len(Videos) = %d, want 1", len(result.Videos))
	}

	v := result.Videos[0]
	if v.WebPath != "static/videos/highlight-videos/exp-alpha/scene-kitchen/batch-1/stack-blocks/gpt-5-mini/iter3/sim.mp4" {
		t.Errorf("WebPath = %q", v.WebPath)
	}
	if v.Scene != "scene-kitchen" {
		t.Errorf("Scene = %q, want %q", v.Scene, "scene-kitchen")
	}
	if v.Task != "stack-blocks" {
		t.Errorf("Task = %q, want %q", v.Task, "stack-blocks")
	}
	if v.Model != "gpt-5-mini" {
		t.Errorf("Model = %q, want %q", v.Model, "gpt-5-mini")
	}
	if v.RunID != "iter3" {
		t.Errorf("RunID = %q, want %q", v.RunID, "iter3")
	}
	if v.IterName != "iter3" {
		t.Errorf("IterName = %q, want %q", v.IterName, "iter3")
	}
	if v.IterNumber != 3 {
		t.Errorf("IterNumber = %d, want 3", v.IterNumber)
	}
	wantAbs := filepath.Join(result.Root, "exp-alpha", "scene-kitchen", "batch-1", "stack-blocks", "gpt-5-mini", "iter3", "sim.mp4")
	if v.AbsPath != wantAbs {
		t.Errorf("AbsPath = %q, want %q", v.AbsPath, wantAbs)
	}
}

func TestScan_RootMissing(t *testing.T) {
	result, err := Scan(t.TempDir(), DefaultLayout())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !result.RootMissing {
		t.Error("RootMissing = false, want true")
	}
	if len(result.Videos) != 0 {
		t.Errorf("len(Videos) = %d, want 0", len(result.Videos))
	}
}

func TestScan_MatchesOnlyVideoFileName(t *testing.T) {
	base := t.TempDir()
	writeVideoFiles(t, base,
		"exp/scene/batch/task/gpt-5/run1/sim.mp4",
		"exp/scene/batch/task/gpt-5/run1/other.mp4",
		"exp/scene/batch/task/gpt-5/run1/notes.txt",
	)

	result, err := Scan(base, DefaultLayout())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(result.Videos) != 1 {
		t.Fatalf("len(Videos) = %d, want 1", len(result.Videos))
	}
	if len(result.Skipped) != 0 {
		t.Errorf("len(Skipped) = %d, want 0", len(result.Skipped))
	}
}

func TestScan_RecordsSkippedPaths(t *testing.T) {
	base := t.TempDir()
	writeVideoFiles(t, base,
		"a/gpt-5/run/sim.mp4",
		"exp/scene/batch/task/model-x/run1/sim.mp4",
		"gpt-5-exp/scene/batch/c/d/sim.mp4",
	)

	result, err := Scan(base, DefaultLayout())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(result.Videos) != 0 {
		t.Errorf("len(Videos) = %d, want 0", len(result.Videos))
	}
	if len(result.Skipped) != 3 {
		t.Fatalf("len(Skipped) = %d, want 3", len(result.Skipped))
	}

	// WalkDir visits in lexical order.
	want := []SkippedFile{
		{RelPath: "a/gpt-5/run/sim.mp4", Reason: SkipTooShallow},
		{RelPath: "exp/scene/batch/task/model-x/run1/sim.mp4", Reason: SkipNoMarker},
		{RelPath: "gpt-5-exp/scene/batch/c/d/sim.mp4", Reason: SkipBadLayout},
	}
	for i, w := range want {
		if result.Skipped[i] != w {
			t.Errorf("Skipped[%d] = %+v, want %+v", i, result.Skipped[i], w)
		}
	}
}

func TestParseRelPath(t *testing.T) {
	tests := []struct {
		name   string
		rel    string
		layout Layout
		want   Video
		reason SkipReason
	}{
		{
			name:   "minimal depth",
			rel:    "exp/scene/task/gpt-5/run7/sim.mp4",
			layout: DefaultLayout(),
			want: Video{
				WebPath:    "static/videos/highlight-videos/exp/scene/task/gpt-5/run7/sim.mp4",
				Scene:      "scene",
				Task:       "task",
				Model:      "gpt-5",
				RunID:      "run7",
				IterName:   "run7",
				IterNumber: 7,
			},
		},
		{
			name:   "too shallow",
			rel:    "scene/task/gpt-5/run/sim.mp4",
			layout: DefaultLayout(),
			reason: SkipTooShallow,
		},
		{
			name:   "no marker segment",
			rel:    "exp/scene/batch/task/model-x/run1/sim.mp4",
			layout: DefaultLayout(),
			reason: SkipNoMarker,
		},
		{
			name:   "marker leads the path",
			rel:    "gpt-5/scene/a/b/c/sim.mp4",
			layout: DefaultLayout(),
			reason: SkipBadLayout,
		},
		{
			name:   "scene index beyond path",
			rel:    "exp/scene/task/gpt-5/run/sim.mp4",
			layout: Layout{Marker: "gpt-5", SceneIndex: 9, TaskOffset: -1},
			reason: SkipBadLayout,
		},
		{
			name:   "custom layout",
			rel:    "sceneX/x/taskY/any/model-z/run2/sim.mp4",
			layout: Layout{Marker: "model-", SceneIndex: 0, TaskOffset: -2},
			want: Video{
				WebPath:    "static/videos/highlight-videos/sceneX/x/taskY/any/model-z/run2/sim.mp4",
				Scene:      "sceneX",
				Task:       "taskY",
				Model:      "model-z",
				RunID:      "run2",
				IterName:   "run2",
				IterNumber: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := parseRelPath(tt.rel, tt.layout)
			if reason != tt.reason {
				t.Fatalf("reason = %q, want %q", reason, tt.reason)
			}
			if reason == "" && got != tt.want {
				t.Errorf("video = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIterNumber(t *testing.T) {
	tests := []struct {
		runID string
		want  int
	}{
		{"iter3", 3},
		{"run-12-final", 12},
		{"003", 3},
		{"no-digits", 0},
		{"", 0},
		{"v2x7", 2},
		{"12345678901234567890123", 0},
	}

	for _, tt := range tests {
		t.Run(tt.runID, func(t *testing.T) {
			if got := iterNumber(tt.runID); got != tt.want {
				t.Errorf("iterNumber(%q) = %d, want %d", tt.runID, got, tt.want)
			}
		})
	}
}
