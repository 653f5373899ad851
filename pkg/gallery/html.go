package gallery

import (
	"bytes"
	"encoding/json"
	"html/template"
	"sort"

	"github.com/google/renameio/v2"

	"github.com/devicelab-dev/highlight-gallery/pkg/core"
)

// pageData is the root template payload.
type pageData struct {
	Tasks         []string
	InitialModels []string
	Sections      []sectionData
	ModelsByTask  template.JS // JSON object: task -> sorted model list
}

// sectionData is one (task, model) group formatted for the template.
type sectionData struct {
	ID     string
	Task   string
	Model  string
	Videos []videoData
}

// videoData is one video card. Position is the 0-based index within the
// section and drives the caption.
type videoData struct {
	WebPath  string
	Position int
}

// RenderPage renders the gallery document for the given groups. Rendering an
// empty slice yields a page with empty selectors and no sections.
func RenderPage(groups []Group) (string, error) {
	data, err := buildPageData(groups)
	if err != nil {
		return "", core.ErrRenderTemplate.WithCause(err)
	}

	tmpl, err := template.New("gallery").Parse(htmlTemplate)
	if err != nil {
		return "", core.ErrRenderTemplate.WithCause(err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", core.ErrRenderTemplate.WithCause(err)
	}

	return buf.String(), nil
}

// WritePage renders the document and writes it to path. The write goes
// through a temp file and rename, so a failed run never leaves a truncated
// page behind.
func WritePage(groups []Group, path string) error {
	page, err := RenderPage(groups)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, []byte(page), 0644); err != nil {
		return core.ErrWriteOutput.WithCause(err)
	}
	return nil
}

// buildPageData derives the template payload. Tasks and the models within
// each task are sorted, and sections follow (task, model) order, so the page
// is deterministic no matter how the groups slice was assembled.
func buildPageData(groups []Group) (pageData, error) {
	modelsByTask := make(map[string][]string)
	for _, g := range groups {
		modelsByTask[g.Task] = append(modelsByTask[g.Task], g.Model)
	}

	tasks := make([]string, 0, len(modelsByTask))
	for task := range modelsByTask {
		tasks = append(tasks, task)
		sort.Strings(modelsByTask[task])
	}
	sort.Strings(tasks)

	var initialModels []string
	if len(tasks) > 0 {
		initialModels = modelsByTask[tasks[0]]
	}

	ordered := make([]Group, len(groups))
	copy(ordered, groups)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Task != ordered[j].Task {
			return ordered[i].Task < ordered[j].Task
		}
		return ordered[i].Model < ordered[j].Model
	})

	sections := make([]sectionData, 0, len(ordered))
	for _, g := range ordered {
		videos := make([]videoData, 0, len(g.Videos))
		for i, v := range g.Videos {
			videos = append(videos, videoData{WebPath: v.WebPath, Position: i})
		}
		sections = append(sections, sectionData{
			ID:     g.Task + "-" + g.Model,
			Task:   g.Task,
			Model:  g.Model,
			Videos: videos,
		})
	}

	jsonBytes, err := json.Marshal(modelsByTask)
	if err != nil {
		return pageData{}, err
	}

	return pageData{
		Tasks:         tasks,
		InitialModels: initialModels,
		Sections:      sections,
		ModelsByTask:  template.JS(jsonBytes),
	}, nil
}

// htmlTemplate is the gallery page. All styling comes from the Bulma
// stylesheet the deployment serves next to the videos; the embedded script
// drives the task/model selectors without any server round trip.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link rel="stylesheet" href="static/css/bulma.min.css">
</head>
<body>
<div class="section">
  <div class="container is-max-desktop">
    <div class="field">
      <label class="label">Task</label>
      <div class="control">
        <div class="select">
          <select id="task-select" onchange="updateTask()">
{{- range .Tasks}}
            <option value="{{.}}">{{.}}</option>
{{- end}}
          </select>
        </div>
      </div>
    </div>
    <div class="field">
      <label class="label">Model</label>
      <div class="control">
        <div class="select">
          <select id="model-select" onchange="updateModel()">
{{- range .InitialModels}}
            <option value="{{.}}">{{.}}</option>
{{- end}}
          </select>
        </div>
      </div>
    </div>
  </div>
</div>
{{- range .Sections}}
<section class="section video-grid" id="{{.ID}}" style="display:none;">
  <div class="container is-max-desktop">
    <h2 class="title is-3">{{.Task}} — {{.Model}}</h2>
    <div class="columns is-multiline">
{{- range .Videos}}
      <div class="column is-one-third-desktop is-half-mobile">
        <div class="card">
          <div class="card-image">
            <video autoplay loop muted playsinline preload="metadata" style="width:100%; height:auto;">
              <source src="{{.WebPath}}" type="video/mp4">
            </video>
          </div>
          <div class="card-content">
            <p class="subtitle is-6">Feedback iteration {{.Position}}</p>
          </div>
        </div>
      </div>
{{- end}}
    </div>
  </div>
</section>
{{end}}
<script>
const modelsByTask = {{.ModelsByTask}};
function updateTask() {
  const task = document.getElementById("task-select").value;
  const modelSel = document.getElementById("model-select");
  modelSel.innerHTML = "";
  for (const m of modelsByTask[task]) {
    const opt = document.createElement("option");
    opt.value = m; opt.textContent = m;
    modelSel.appendChild(opt);
  }
  updateModel();
}
function updateModel() {
  const task = document.getElementById("task-select").value;
  const model = document.getElementById("model-select").value;
  // hide all sections
  document.querySelectorAll(".video-grid").forEach(s => s.style.display = "none");
  // show the selected one
  const section = document.getElementById(task + "-" + model);
  if (section) section.style.display = "block";
}
// initialize
updateTask();
</script>
</body>
</html>`
