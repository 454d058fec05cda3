package trades

import (
	"errors"
	"html/template"
	"os/exec"
	"runtime"
)

const previewTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>government-trades preview</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin-bottom: 2rem; }
th, td { border: 1px solid #999; padding: 0.3rem 0.6rem; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<h1>Aggregated trades</h1>
<table>
<tr><th>owner</th><th>transaction</th><th>trade_count</th></tr>
{{range .Summary}}<tr><td>{{.Owner}}</td><td>{{.Transaction}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
<h1>Sample rows</h1>
<table>
<tr><th>politician_id</th><th>politician_name</th>{{range .Columns}}<th>{{.}}</th>{{end}}<th>owner_category</th><th>transaction_type</th></tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`

// WritePreviewHTML renders a small standalone page with the summary
// and the first sampleRows raw rows, for eyeballing a crawl before
// sharing the CSVs.
func WritePreviewHTML(path string, records []Record, summary []SummaryRow, sampleRows int) error {
	if sampleRows < 0 {
		sampleRows = 0
	}
	if sampleRows > len(records) {
		sampleRows = len(records)
	}
	columns := unionColumns(records[:sampleRows])

	var rows [][]string
	for _, r := range records[:sampleRows] {
		byName := map[string]string{}
		for i, name := range r.Header {
			if i < len(r.Cells) {
				byName[name] = r.Cells[i]
			}
		}
		row := []string{r.PoliticianId, r.PoliticianName}
		for _, name := range columns {
			row = append(row, byName[name])
		}
		row = append(row, string(r.Owner), string(r.Transaction))
		rows = append(rows, row)
	}

	tmpl, err := template.New("preview").Parse(previewTemplate)
	if err != nil {
		return err
	}
	f, err := createWithParents(path)
	if err != nil {
		return err
	}
	err = tmpl.Execute(f, struct {
		Summary []SummaryRow
		Columns []string
		Rows    [][]string
	}{
		Summary: summary,
		Columns: columns,
		Rows:    rows,
	})
	return errors.Join(err, f.Close())
}

// OpenInBrowser fires the platform opener at the path and does not wait
// for it, preview is strictly a convenience.
func OpenInBrowser(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
