package charts

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-wrangler/models"
	"vehicle-wrangler/utils"
)

func series() models.PlotSeries {
	return models.PlotSeries{
		Metric: "comb08",
		Title:  "Combined Mileage of Cars",
		XLabel: models.XAxisLabel,
		YLabel: models.YAxisLabel,
		X:      []float64{2005, 2010, math.NaN(), 2012},
		Y:      []float64{21, math.NaN(), 30, 33},
	}
}

func TestPoints_SkipsMissing(t *testing.T) {
	pts := Points(series())
	require.Len(t, pts, 2)
	assert.Equal(t, 2005.0, pts[0].X)
	assert.Equal(t, 21.0, pts[0].Y)
	assert.Equal(t, 2012.0, pts[1].X)
}

func TestBuild_Labels(t *testing.T) {
	p, err := Build(series())
	require.NoError(t, err)
	assert.Equal(t, "Combined Mileage of Cars", p.Title.Text)
	assert.Equal(t, "Years", p.X.Label.Text)
	assert.Equal(t, "Gas Mileage", p.Y.Label.Text)
}

func TestBuild_AllMissing(t *testing.T) {
	s := series()
	s.Y = []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
	p, err := Build(s)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestRender_WritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	r := NewScatterRenderer(dir, utils.NewLoggerTo(&bytes.Buffer{}, "error"))

	paths, err := r.Render([]models.PlotSeries{series()})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "comb08.png"), paths[0])

	info, err := os.Stat(paths[0])
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
