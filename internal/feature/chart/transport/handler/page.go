package handler

import (
	"fmt"
	"html/template"

	"cotacao_moedas/internal/feature/chart/domain/entity"
)

// PageTemplate is the name under which the dashboard page is registered.
const PageTemplate = "dashboard.html"

// Template returns the parsed dashboard page, for gin's SetHTMLTemplate.
func Template() *template.Template {
	return template.Must(template.New(PageTemplate).Parse(pageHTML))
}

type tableRow struct {
	Date   string
	Values []string
}

// pageData is what the page template reads.
type pageData struct {
	DarkClass    string
	Dark         bool
	StartDate    string
	EndDate      string
	Status       string
	ChartVersion int
	HasChart     bool
	Headers      []string
	Rows         []tableRow
}

// valuesTable lays the series out one row per date, formatted with the tooltip decimals.
func valuesTable(opts *entity.ChartOptions) ([]string, []tableRow) {
	if opts == nil || opts.Empty() {
		return nil, nil
	}
	headers := make([]string, 0, len(opts.Series))
	for _, s := range opts.Series {
		headers = append(headers, s.Name)
	}
	rows := make([]tableRow, 0, len(opts.XAxis.Categories))
	for i, date := range opts.XAxis.Categories {
		row := tableRow{Date: date, Values: make([]string, 0, len(opts.Series))}
		for _, s := range opts.Series {
			v := "-"
			if i < len(s.Data) && s.Data[i] != nil {
				v = fmt.Sprintf("%.*f", opts.Tooltip.ValueDecimals, *s.Data[i])
			}
			row.Values = append(row.Values, v)
		}
		rows = append(rows, row)
	}
	return headers, rows
}

const pageHTML = `<!DOCTYPE html>
<html lang="pt-BR" class="{{.DarkClass}}">
<head>
<meta charset="utf-8">
<title>Cotações</title>
<style>
html { background: #fff; color: #333; font-family: sans-serif; }
html.dark-mode { background: #3a3f4a; color: #f4f4f4; }
table { border-collapse: collapse; }
td, th { padding: 4px 10px; border-bottom: 1px solid #ddd; }
html.dark-mode td, html.dark-mode th { border-color: #555; }
#status { min-height: 1.2em; }
</style>
</head>
<body>
<form method="post" action="/theme">
  <label><input type="checkbox" id="darkModeToggle" name="dark_mode" value="true" {{if .Dark}}checked{{end}} onchange="this.form.submit()"> Modo escuro</label>
</form>
<form method="post" action="/fetch">
  <input type="date" id="startDate" name="start_date" value="{{.StartDate}}">
  <input type="date" id="endDate" name="end_date" value="{{.EndDate}}">
  <button type="submit">Buscar cotações</button>
</form>
<p id="status">{{.Status}}</p>
<div id="container">{{if .HasChart}}<img src="/chart?v={{.ChartVersion}}" alt="gráfico de cotações">{{end}}</div>
{{if .Rows}}
<table>
  <tr><th>Data</th>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
  {{range .Rows}}<tr><td>{{.Date}}</td>{{range .Values}}<td>{{.}}</td>{{end}}</tr>
  {{end}}
</table>
{{end}}
</body>
</html>
`
