package services

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"vehicle-wrangler/models"
	"vehicle-wrangler/utils"
)

// Loader parses a CSV file into a Dataset
type Loader struct {
	logger *utils.Logger
}

// NewLoader creates a new Loader
func NewLoader(logger *utils.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load opens path and parses it. A path that does not resolve wraps models.ErrFileNotFound.
func (l *Loader) Load(path string) (*models.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	ds, err := l.Read(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	l.logger.Info("Loaded %s: %d rows x %d columns", path, ds.Len(), len(ds.Columns()))
	return ds, nil
}

// Read parses CSV from r. The first record is the header. Records are
// padded or cut to the header width before type detection.
func (l *Loader) Read(r io.Reader) (*models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return models.NewDataset(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header = trimHeader(header)
	width := len(header)

	var raw [][]string
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", line, err)
		}
		if len(rec) != width {
			l.logger.Debug("Record %d has %d fields, header has %d", line, len(rec), width)
		}
		row := make([]string, width)
		copy(row, rec)
		raw = append(raw, row)
	}

	return datasetFromRecords(header, raw)
}

func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = h
	}
	return out
}
