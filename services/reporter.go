package services

import (
	"fmt"
	"io"
	"strings"

	"vehicle-wrangler/models"
)

const (
	reportWidth = 55
	cellWidth   = 12
)

// PrintAnalysisReport formats the run's diagnostic dumps. At most topN
// entries of each frequency count are listed; 0 lists all of them.
func PrintAnalysisReport(w io.Writer, report *models.AnalysisReport, topN int) {
	border := strings.Repeat("═", reportWidth)
	thin := strings.Repeat("─", reportWidth)

	fmt.Fprintf(w, "\n╔%s╗\n", border)
	fmt.Fprintf(w, "║%s║\n", center("VEHICLE FUEL ECONOMY SUMMARY", reportWidth))
	fmt.Fprintf(w, "╚%s╝\n", border)

	fmt.Fprintf(w, "\n OVERVIEW\n%s\n", thin)
	fmt.Fprintf(w, "  Run ID   : %s\n", report.RunID)
	if report.SourcePath != "" {
		fmt.Fprintf(w, "  Source   : %s\n", report.SourcePath)
	}
	fmt.Fprintf(w, "  Rows     : %d\n", report.Rows)
	fmt.Fprintf(w, "  Columns  : %d\n", report.Columns)

	if report.Head != nil && report.Head.Len() > 0 {
		fmt.Fprintf(w, "\n HEAD\n%s\n", thin)
		printRows(w, report.Head)
	}

	if len(report.Info) > 0 {
		fmt.Fprintf(w, "\n INFO\n%s\n", thin)
		fmt.Fprintf(w, "  %-4s %-20s %10s  %s\n", "#", "Column", "Non-Null", "Type")
		for i, ci := range report.Info {
			fmt.Fprintf(w, "  %-4d %-20s %10d  %s\n", i, truncate(ci.Column, 20), ci.NonNull, ci.Type)
		}
	}

	if report.NormalizedHead != nil && report.NormalizedHead.Len() > 0 {
		fmt.Fprintf(w, "\n EMPTY STRINGS AS NaN\n%s\n", thin)
		printRows(w, report.NormalizedHead)
	}

	if len(report.NullCounts) > 0 {
		fmt.Fprintf(w, "\n MISSING VALUES AFTER IMPUTATION\n%s\n", thin)
		for _, nc := range report.NullCounts {
			fmt.Fprintf(w, "  %-25s %d\n", nc.Column, nc.Count)
		}
	}

	printCounts(w, "MAKE", report.MakeCounts, topN, thin)
	printCounts(w, "YEAR", report.YearCounts, topN, thin)

	if report.SortedByYear != nil && report.SortedByYear.Len() > 0 {
		fmt.Fprintf(w, "\n NEWEST MODELS\n%s\n", thin)
		printRows(w, report.SortedByYear.Head(5))
	}

	fmt.Fprintf(w, "\n%s\n\n", border)
}

func printCounts(w io.Writer, title string, counts []models.FrequencyCount, topN int, thin string) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "\n %s VALUE COUNTS (%d distinct)\n%s\n", title, len(counts), thin)
	limit := len(counts)
	if topN > 0 && topN < limit {
		limit = topN
	}
	for _, fc := range counts[:limit] {
		fmt.Fprintf(w, "  %-25s %d\n", truncate(fc.Value.String(), 25)+":", fc.Count)
	}
	if limit < len(counts) {
		fmt.Fprintf(w, "  ... %d more\n", len(counts)-limit)
	}
}

func printRows(w io.Writer, ds *models.Dataset) {
	cols := ds.Columns()
	var b strings.Builder
	b.WriteString("  ")
	for _, c := range cols {
		fmt.Fprintf(&b, "%-*s ", cellWidth, truncate(c, cellWidth))
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	for r := 0; r < ds.Len(); r++ {
		b.Reset()
		b.WriteString("  ")
		for _, v := range ds.Row(r) {
			fmt.Fprintf(&b, "%-*s ", cellWidth, truncate(v.String(), cellWidth))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
