package services

import (
	"fmt"

	"vehicle-wrangler/models"
)

// ExtractSeries pairs year with one mileage column, row for row.
// Missing cells become NaN; a text cell is a type coercion failure.
func ExtractSeries(ds *models.Dataset, plot models.MetricPlot) (models.PlotSeries, error) {
	years, err := ds.Column(models.YearColumn)
	if err != nil {
		return models.PlotSeries{}, err
	}
	metric, err := ds.Column(plot.Column)
	if err != nil {
		return models.PlotSeries{}, err
	}

	x, err := toFloats(models.YearColumn, years)
	if err != nil {
		return models.PlotSeries{}, err
	}
	y, err := toFloats(plot.Column, metric)
	if err != nil {
		return models.PlotSeries{}, err
	}

	return models.PlotSeries{
		Metric: plot.Column,
		Title:  plot.Title,
		XLabel: models.XAxisLabel,
		YLabel: models.YAxisLabel,
		X:      x,
		Y:      y,
	}, nil
}

// ExtractAll builds the combined, city and highway series
func ExtractAll(ds *models.Dataset) ([]models.PlotSeries, error) {
	out := make([]models.PlotSeries, 0, len(models.MileagePlots))
	for _, p := range models.MileagePlots {
		s, err := ExtractSeries(ds, p)
		if err != nil {
			return nil, fmt.Errorf("extract %s series: %w", p.Column, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func toFloats(column string, values []models.Value) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, ok := v.Float()
		if !ok {
			return nil, fmt.Errorf("%s row %d (%q): %w", column, i, v.Str, models.ErrTypeCoercion)
		}
		out[i] = f
	}
	return out, nil
}
