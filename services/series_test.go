package services

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-wrangler/models"
)

func TestExtractAll(t *testing.T) {
	ds := vehicles()

	series, err := ExtractAll(ds)
	require.NoError(t, err)
	require.Len(t, series, 3)

	titles := []string{"Combined Mileage of Cars", "InCity Mileage of Cars", "Highway Mileage of Cars"}
	for i, s := range series {
		assert.Equal(t, titles[i], s.Title)
		assert.Equal(t, "Years", s.XLabel)
		assert.Equal(t, "Gas Mileage", s.YLabel)
		assert.Len(t, s.X, ds.Len())
		assert.Len(t, s.Y, ds.Len())
	}

	comb := series[0]
	assert.Equal(t, []float64{2005, 2010, 2005}, comb.X)
	assert.Equal(t, 21.0, comb.Y[0])
	assert.True(t, math.IsNaN(comb.Y[2]), "missing mileage propagates as NaN")

	assert.True(t, math.IsNaN(series[1].Y[1]))
}

func TestExtractSeries_MissingColumn(t *testing.T) {
	ds := models.NewDataset([]string{"year"}, [][]models.Value{{models.Number(2005)}})

	_, err := ExtractSeries(ds, models.MileagePlots[0])
	var mce *models.MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "comb08", mce.Column)
}

func TestExtractSeries_TextValue(t *testing.T) {
	ds := models.NewDataset(
		[]string{"year", "comb08"},
		[][]models.Value{{models.Number(2005), models.String("n/a-ish")}},
	)

	_, err := ExtractSeries(ds, models.MileagePlots[0])
	assert.True(t, errors.Is(err, models.ErrTypeCoercion))
}
