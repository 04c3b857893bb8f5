package services

import (
	"fmt"

	"github.com/google/uuid"

	"vehicle-wrangler/models"
	"vehicle-wrangler/utils"
)

// PipelineOptions controls one cleaning and summary run
type PipelineOptions struct {
	HeadRows int
	// PersistNormalized keeps the empty-string normalization for the
	// stages after it; otherwise it is only a printed projection.
	PersistNormalized bool
}

// Pipeline runs load, normalize, impute, summarize and series extraction in order
type Pipeline struct {
	loader   *Loader
	cleaner  *DataCleaner
	insights *InsightService
	opts     PipelineOptions
	logger   *utils.Logger
}

// NewPipeline wires the pipeline stages around one logger
func NewPipeline(opts PipelineOptions, logger *utils.Logger) *Pipeline {
	return &Pipeline{
		loader:   NewLoader(logger),
		cleaner:  NewDataCleaner(logger),
		insights: NewInsightService(logger),
		opts:     opts,
		logger:   logger,
	}
}

// Run loads path and processes it
func (p *Pipeline) Run(path string) (*models.AnalysisReport, error) {
	ds, err := p.loader.Load(path)
	if err != nil {
		return nil, err
	}
	report, err := p.Process(ds)
	if err != nil {
		return nil, err
	}
	report.SourcePath = path
	return report, nil
}

// Process runs every stage after loading. ds is imputed in place.
func (p *Pipeline) Process(ds *models.Dataset) (*models.AnalysisReport, error) {
	report := &models.AnalysisReport{
		RunID:   uuid.New().String(),
		Rows:    ds.Len(),
		Columns: len(ds.Columns()),
		Head:    ds.Head(p.opts.HeadRows).Clone(),
		Info:    p.insights.Info(ds),
	}

	if p.opts.PersistNormalized {
		p.cleaner.Normalize(ds)
		report.NormalizedHead = ds.Head(p.opts.HeadRows).Clone()
	} else {
		report.NormalizedHead = p.cleaner.Normalize(ds.Head(p.opts.HeadRows).Clone())
	}

	imputed, err := p.cleaner.Impute(ds, models.ImputedColumns)
	if err != nil {
		return nil, fmt.Errorf("impute: %w", err)
	}
	report.Imputed = imputed
	if report.NullCounts, err = p.insights.NullCounts(ds); err != nil {
		return nil, fmt.Errorf("null counts: %w", err)
	}

	if report.SortedByYear, err = p.insights.SortBy(ds, models.YearColumn, false); err != nil {
		return nil, err
	}
	if report.MakeCounts, err = p.insights.ValueCounts(ds, models.MakeColumn); err != nil {
		return nil, err
	}
	if report.YearCounts, err = p.insights.ValueCounts(ds, models.YearColumn); err != nil {
		return nil, err
	}
	if report.Series, err = ExtractAll(ds); err != nil {
		return nil, err
	}

	report.Cleaned = ds
	p.logger.Info("Run %s: %d rows summarized, %d distinct makes", report.RunID, ds.Len(), len(report.MakeCounts))
	return report, nil
}
