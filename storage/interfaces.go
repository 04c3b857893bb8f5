package storage

import (
	"context"

	"vehicle-wrangler/models"
)

// DatasetStorage persists a cleaned dataset
type DatasetStorage interface {
	SaveDataset(ctx context.Context, runID string, ds *models.Dataset) error
	Close() error
}

// SummaryStorage persists the summary views of a run
type SummaryStorage interface {
	SaveSummary(report *models.AnalysisReport) error
}

var (
	_ DatasetStorage = (*PostgresWriter)(nil)
	_ SummaryStorage = (*XLSXWriter)(nil)
)
