package compose

import (
	"html/template"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/pulseboard/internal/model"
)

// HTML renders the page to a standalone document. Chart SVG is embedded
// inline; everything else goes through html/template escaping upstream
// in Compose.
func (p Page) HTML() (string, error) {
	var b strings.Builder
	if err := pageTmpl.Execute(&b, p); err != nil {
		return "", eris.Wrap(err, "compose: execute page template")
	}
	return b.String(), nil
}

// Dark reports whether the page renders in dark mode, for the template.
func (p Page) Dark() bool {
	return p.Theme == model.ThemeDark
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; background: {{if .Dark}}#0B1120{{else}}#F9FAFB{{end}}; color: {{if .Dark}}#F9FAFB{{else}}#111827{{end}}; }
header { padding: 20px 24px 8px; }
header p { color: {{if .Dark}}#9CA3AF{{else}}#6B7280{{end}}; margin: 4px 0 0; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 12px; padding: 12px 24px; }
.card { background: {{if .Dark}}#111827{{else}}#FFFFFF{{end}}; border-radius: 8px; padding: 14px 16px; box-shadow: 0 1px 2px rgba(0,0,0,.08); }
.card .title { font-size: 12px; color: {{if .Dark}}#9CA3AF{{else}}#6B7280{{end}}; }
.card .value { font-size: 22px; font-weight: 600; margin-top: 2px; }
.tabs { display: flex; gap: 4px; padding: 8px 24px 0; border-bottom: 1px solid {{if .Dark}}#374151{{else}}#E5E7EB{{end}}; }
.tab { padding: 8px 14px; border-radius: 6px 6px 0 0; font-size: 13px; }
.tab.active { background: {{if .Dark}}#1F2937{{else}}#FFFFFF{{end}}; font-weight: 600; }
.panel { padding: 16px 24px; display: grid; grid-template-columns: repeat(auto-fit, minmax(320px, 1fr)); gap: 16px; }
</style>
</head>
<body data-theme="{{.Theme}}">
<header>
<h1>{{.Title}}</h1>
{{if .Description}}<p>{{.Description}}</p>{{end}}
</header>
<section class="cards">
{{range .Cards}}<div class="card">
<div class="title">{{.KPI.Icon}} {{.KPI.Title}}</div>
<div class="value">{{.KPI.Value}}</div>
<div class="delta" style="color: {{.DeltaColor}}">{{if eq .KPI.Trend "down"}}&#9660;{{else}}&#9650;{{end}} {{printf "%.1f" .KPI.Change}}%</div>
</div>
{{end}}</section>
<nav class="tabs">
{{range .Tabs}}<div class="tab{{if .Active}} active{{end}}" data-tab="{{.ID}}">{{.Icon}} {{.Label}}</div>
{{end}}</nav>
<section class="panel" data-active-tab="{{.ActiveTab}}">
{{range .Charts}}<figure>{{.}}</figure>
{{end}}</section>
</body>
</html>
`))
