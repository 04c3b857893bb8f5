package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"vehicle-wrangler/models"
	"vehicle-wrangler/utils"
)

const (
	sheetNullCounts = "NullCounts"
	sheetImputed    = "Imputed"
	sheetMake       = "Make"
	sheetYear       = "Year"
)

// XLSXWriter stores the summary views of a run in one workbook
type XLSXWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewXLSXWriter creates a new XLSXWriter
func NewXLSXWriter(filePath string, logger *utils.Logger) *XLSXWriter {
	return &XLSXWriter{filePath: filePath, logger: logger}
}

// SaveSummary writes null counts, imputed counts and the make/year frequency counts
func (w *XLSXWriter) SaveSummary(report *models.AnalysisReport) error {
	if err := os.MkdirAll(filepath.Dir(w.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetNullCounts); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{sheetImputed, sheetMake, sheetYear} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	if err := writeColumnCounts(f, sheetNullCounts, "Missing", report.NullCounts); err != nil {
		return err
	}
	if err := writeColumnCounts(f, sheetImputed, "Imputed", report.Imputed); err != nil {
		return err
	}
	if err := writeFrequencies(f, sheetMake, models.MakeColumn, report.MakeCounts); err != nil {
		return err
	}
	if err := writeFrequencies(f, sheetYear, models.YearColumn, report.YearCounts); err != nil {
		return err
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	w.logger.Info("Summary workbook written to: %s", w.filePath)
	return nil
}

func writeColumnCounts(f *excelize.File, sheet, label string, counts []models.ColumnCount) error {
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Column", label}); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i, c := range counts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{c.Column, c.Count}); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func writeFrequencies(f *excelize.File, sheet, column string, counts []models.FrequencyCount) error {
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{column, "Count"}); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i, fc := range counts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		var key interface{} = "NaN"
		if v := cellAny(fc.Value); v != nil {
			key = v
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{key, fc.Count}); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
