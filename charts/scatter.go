package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"vehicle-wrangler/models"
	"vehicle-wrangler/utils"
)

// ScatterRenderer saves one scatter chart per plot series
type ScatterRenderer struct {
	dir    string
	width  vg.Length
	height vg.Length
	logger *utils.Logger
}

// NewScatterRenderer writes charts under dir
func NewScatterRenderer(dir string, logger *utils.Logger) *ScatterRenderer {
	return &ScatterRenderer{
		dir:    dir,
		width:  6 * vg.Inch,
		height: 4 * vg.Inch,
		logger: logger,
	}
}

// Points drops pairs where either coordinate is NaN or infinite
func Points(s models.PlotSeries) plotter.XYs {
	pts := make(plotter.XYs, 0, len(s.X))
	for i := range s.X {
		x, y := s.X[i], s.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

// Build assembles the chart for one series without saving it
func Build(s models.PlotSeries) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel

	pts := Points(s)
	if len(pts) == 0 {
		return p, nil
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scatter for %s: %w", s.Metric, err)
	}
	sc.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sc)
	p.Add(plotter.NewGrid())
	return p, nil
}

// Render saves every series as <dir>/<metric>.png and returns the file paths in order
func (r *ScatterRenderer) Render(series []models.PlotSeries) ([]string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create plot directory: %w", err)
	}

	paths := make([]string, 0, len(series))
	for _, s := range series {
		p, err := Build(s)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(r.dir, s.Metric+".png")
		if err := p.Save(r.width, r.height, path); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", path, err)
		}
		skipped := len(s.X) - len(Points(s))
		if skipped > 0 {
			r.logger.Debug("%s: %d points without a value were left out", s.Metric, skipped)
		}
		r.logger.Info("Saved %q to %s", s.Title, path)
		paths = append(paths, path)
	}
	return paths, nil
}
