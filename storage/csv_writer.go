package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"vehicle-wrangler/models"
	"vehicle-wrangler/utils"
)

// CSVWriter writes a dataset back out as CSV
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// WriteDataset writes the header and every row. Imputed zeros are written as 0.
func (w *CSVWriter) WriteDataset(ds *models.Dataset) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(ds.Columns()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(ds.Columns()))
	for r := 0; r < ds.Len(); r++ {
		for c, v := range ds.Row(r) {
			record[c] = cellString(v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", r+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	w.logger.Info("Cleaned dataset written to: %s (%d rows)", w.filePath, ds.Len())
	return nil
}
