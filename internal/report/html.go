package report

import (
	"html/template"
	"io"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// HTMLRenderer writes a standalone HTML page.
type HTMLRenderer struct{}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Quiz validation report{{if .Name}} — {{.Name}}{{end}}</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 52rem; color: #1e293b; }
  h1 { color: #8b5cf6; }
  .pass { color: #16a34a; font-weight: 600; }
  .fail { color: #e11d48; font-weight: 600; }
  .warning { color: #ea580c; }
  table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
  th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #e2e8f0; }
  ul { margin: 0.2rem 0; padding-left: 1.2rem; }
  .summary td:first-child { color: #64748b; }
</style>
</head>
<body>
<h1>Quiz validation report</h1>
{{if .Name}}<p>{{.Name}}</p>{{end}}
<table>
  <tr><th>#</th><th>Status</th><th>Score</th><th>Details</th></tr>
  {{range $i, $r := .Set.Results}}
  <tr>
    <td>{{inc $i}}</td>
    <td>{{if $r.Valid}}<span class="pass">PASS</span>{{else}}<span class="fail">FAIL</span>{{end}}</td>
    <td>{{$r.Score}}</td>
    <td>
      <ul>
        {{range $r.Errors}}<li class="fail">[{{.Rule}}] {{.Message}}</li>{{end}}
        {{range $r.Warnings}}<li class="warning">[{{.Rule}}] {{.Message}}</li>{{end}}
      </ul>
    </td>
  </tr>
  {{end}}
</table>
<h2>Summary</h2>
<table class="summary">
  <tr><td>Total</td><td>{{.Set.Summary.Total}}</td></tr>
  <tr><td>Passed</td><td class="pass">{{.Set.Summary.Passed}}</td></tr>
  <tr><td>Failed</td><td class="fail">{{.Set.Summary.Failed}}</td></tr>
  <tr><td>Average score</td><td>{{.Set.Summary.AverageScore}}</td></tr>
  <tr><td>Verdict</td><td>{{if .Set.Valid}}<span class="pass">VALID</span>{{else}}<span class="fail">INVALID</span>{{end}}</td></tr>
</table>
</body>
</html>
`))

type htmlData struct {
	Name string
	Set  *quiz.SetResult
}

func (h *HTMLRenderer) Render(w io.Writer, name string, set *quiz.SetResult) error {
	return htmlTemplate.Execute(w, htmlData{Name: name, Set: set})
}
