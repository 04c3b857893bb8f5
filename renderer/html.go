package renderer

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"vehicle-wrangler/models"
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Vehicle Fuel Economy Summary</title>
<style>
body { font-family: sans-serif; margin: 24px; }
table { border-collapse: collapse; margin-bottom: 16px; }
td, th { border: 1px solid #ccc; padding: 2px 8px; text-align: left; }
img { max-width: 100%; page-break-inside: avoid; }
</style>
</head>
<body>
<h1>Vehicle Fuel Economy Summary</h1>
<p>Run {{.Report.RunID}}{{if .Report.SourcePath}} &middot; {{.Report.SourcePath}}{{end}} &middot; {{.Report.Rows}} rows &times; {{.Report.Columns}} columns</p>

<h2>Missing values after imputation</h2>
<table>
<tr><th>Column</th><th>Missing</th></tr>
{{range .Report.NullCounts}}<tr><td>{{.Column}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>Imputed cells</h2>
<table>
<tr><th>Column</th><th>Replaced with 0</th></tr>
{{range .Report.Imputed}}<tr><td>{{.Column}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>Make</h2>
<table>
<tr><th>make</th><th>Count</th></tr>
{{range .Makes}}<tr><td>{{.Value}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>Year</h2>
<table>
<tr><th>year</th><th>Count</th></tr>
{{range .Years}}<tr><td>{{.Value}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

{{range .Plots}}<h2>{{.Title}}</h2>
<img src="{{.Src}}" alt="{{.Title}}">
{{end}}
</body>
</html>
`))

// PlotImage is a rendered chart referenced from the report
type PlotImage struct {
	Title string
	Src   string
}

type reportData struct {
	Report *models.AnalysisReport
	Makes  []models.FrequencyCount
	Years  []models.FrequencyCount
	Plots  []PlotImage
}

// WriteHTML renders the report; topN caps each frequency table, 0 keeps all rows
func WriteHTML(w io.Writer, report *models.AnalysisReport, plots []PlotImage, topN int) error {
	data := reportData{
		Report: report,
		Makes:  top(report.MakeCounts, topN),
		Years:  top(report.YearCounts, topN),
		Plots:  plots,
	}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// WriteHTMLFile renders the report to path. Plot paths are made relative to
// the report's directory so the file can be opened from disk.
func WriteHTMLFile(path string, report *models.AnalysisReport, plotPaths []string, topN int) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	plots := make([]PlotImage, 0, len(plotPaths))
	for i, p := range plotPaths {
		src, err := filepath.Rel(dir, p)
		if err != nil {
			src = p
		}
		title := filepath.Base(p)
		if i < len(report.Series) {
			title = report.Series[i].Title
		}
		plots = append(plots, PlotImage{Title: title, Src: filepath.ToSlash(src)})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	return WriteHTML(f, report, plots, topN)
}

func top(counts []models.FrequencyCount, n int) []models.FrequencyCount {
	if n > 0 && n < len(counts) {
		return counts[:n]
	}
	return counts
}
