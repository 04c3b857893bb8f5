package services

import (
	"vehicle-wrangler/models"
	"vehicle-wrangler/utils"
)

// DataCleaner normalizes empty strings and imputes missing cells
type DataCleaner struct {
	logger *utils.Logger
}

// NewDataCleaner creates a new DataCleaner
func NewDataCleaner(logger *utils.Logger) *DataCleaner {
	return &DataCleaner{logger: logger}
}

// Normalize turns every empty-string cell into the missing marker.
// It mutates ds in place and returns it; running it twice changes nothing.
func (c *DataCleaner) Normalize(ds *models.Dataset) *models.Dataset {
	width := len(ds.Columns())
	changed := 0
	for r := 0; r < ds.Len(); r++ {
		for col := 0; col < width; col++ {
			v := ds.Cell(r, col)
			if v.Kind == models.KindString && v.Str == "" {
				ds.Set(r, col, models.Missing())
				changed++
			}
		}
	}
	c.logger.Debug("Normalized %d empty-string cells", changed)
	return ds
}

// Impute replaces every missing cell of the given columns with the number 0.
// All columns are resolved before any cell changes, so a MissingColumnError
// leaves ds untouched. Returns the replaced-cell count per column, in order.
func (c *DataCleaner) Impute(ds *models.Dataset, columns []string) ([]models.ColumnCount, error) {
	idx := make([]int, len(columns))
	for i, name := range columns {
		ci, err := ds.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idx[i] = ci
	}

	zero := models.Number(0)
	counts := make([]models.ColumnCount, len(columns))
	total := 0
	for i, ci := range idx {
		n := 0
		for r := 0; r < ds.Len(); r++ {
			if ds.Cell(r, ci).IsMissing() {
				ds.Set(r, ci, zero)
				n++
			}
		}
		counts[i] = models.ColumnCount{Column: columns[i], Count: n}
		total += n
		if n > 0 {
			c.logger.Debug("Imputed %d cells in %s", n, columns[i])
		}
	}

	c.logger.Info("Imputed %d missing cells across %d columns", total, len(columns))
	return counts, nil
}
