package reportsvc

import (
	"html/template"
	"strings"

	domain "github.com/sitewalk/inspection-api/internal/domain/reports"
	"github.com/sitewalk/inspection-api/internal/i18n"
)

// reportTmpl renders a self-contained HTML document: question text, the
// analytical prompt, the stored answer and inline images. Image sources are
// the captured device URIs; they render only where those URIs resolve,
// which is the documented limitation of device-local photos.
var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Subject}} - {{.Report.Scope}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; color: #222; margin: 24px; }
h1 { font-size: 22px; }
h2 { font-size: 18px; border-bottom: 1px solid #ccc; padding-bottom: 4px; }
h3 { font-size: 15px; margin-bottom: 2px; }
.meta { color: #555; margin-bottom: 16px; }
.analytical { color: #777; font-style: italic; font-size: 13px; }
.answer { margin: 6px 0 12px; }
img { max-width: 320px; margin: 4px 8px 4px 0; border: 1px solid #ddd; }
</style>
</head>
<body>
<h1>{{.Subject}} - {{.Report.Scope}}</h1>
<div class="meta">
{{.AuthorLabel}}: {{.Report.Author}}<br>
{{.DateLabel}}: {{.Report.Date}}<br>
{{if .Report.Description}}{{.Report.Description}}{{end}}
</div>

<h2>{{.SurveyLabel}}</h2>
{{range .SurveyGroups}}
<h2>{{.Location}}</h2>
{{range .Questions}}
<h3>{{.Prompt}}</h3>
<div class="analytical">{{.Analytical}}</div>
<div class="answer">{{if .Answer}}{{.Answer}}{{else}}{{$.NoAnswer}}{{end}}</div>
{{range .Images}}<img src="{{.}}" alt="">{{end}}
{{end}}
{{end}}

<h2>{{.ManualLabel}}</h2>
{{range .ManualGroups}}
<h2>{{.Part}}</h2>
{{range .Questions}}
<h3>{{.Text}}</h3>
<div class="answer">{{if .Answer}}{{.Answer}}{{else}}{{$.NoAnswer}}{{end}}</div>
{{end}}
{{end}}
</body>
</html>
`))

type renderData struct {
	Report       *domain.Report
	SurveyGroups []domain.SurveyGroup
	ManualGroups []domain.ManualGroup
	Subject      string
	SurveyLabel  string
	ManualLabel  string
	AuthorLabel  string
	DateLabel    string
	NoAnswer     string
}

// RenderHTML produces the export document, grouped in canonical location
// and part order with empty groups omitted.
func RenderHTML(rep *domain.Report, lang i18n.Language) (string, error) {
	data := renderData{
		Report:       rep,
		SurveyGroups: domain.GroupSurvey(rep.Survey),
		ManualGroups: domain.GroupManual(rep.Manual),
		Subject:      i18n.T(lang, i18n.KeyReportSubject),
		SurveyLabel:  i18n.T(lang, i18n.KeyReportSurvey),
		ManualLabel:  i18n.T(lang, i18n.KeyReportManual),
		AuthorLabel:  i18n.T(lang, i18n.KeyReportAuthor),
		DateLabel:    i18n.T(lang, i18n.KeyReportDate),
		NoAnswer:     i18n.T(lang, i18n.KeyReportNoAnswer),
	}

	var b strings.Builder
	if err := reportTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
