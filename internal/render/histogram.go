package render

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/skywatch-data/debris.report/internal/catalog"
	"github.com/skywatch-data/debris.report/internal/config"
	"github.com/skywatch-data/debris.report/internal/orbit"
	"github.com/skywatch-data/debris.report/internal/stats"
)

// Canvas dimensions for the PNG output.
const (
	plotWidth  = 12 * vg.Inch
	plotHeight = 7 * vg.Inch
)

// Histogram renders the stacked altitude histogram to a PNG at outPath.
// The x-axis is log-scaled altitude, one stacked series per category, with
// a shaded LEO region and a dashed reference line at the ISS altitude.
// An empty bucket set still produces a valid (empty) chart.
func Histogram(b catalog.Buckets, summary stats.Summary, cfg *config.PlotConfig, outPath string) error {
	edges, binned := binCategories(b, cfg)

	p := plot.New()
	p.Title.Text = cfg.GetTitle()
	p.X.Label.Text = "Altitude (km)"
	p.Y.Label.Text = "Number of Objects"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Min = edges[0]
	p.X.Max = edges[len(edges)-1]

	yMax := float64(maxStackedCount(binned)) * 1.05
	if yMax == 0 {
		yMax = 1
	}
	p.Y.Min = 0
	p.Y.Max = yMax

	// Shaded LEO region goes in first so the bars draw over it.
	if cfg.GetShowLEOBand() {
		bandMin := edges[0]
		if orbit.LEOFloorKm > bandMin {
			bandMin = orbit.LEOFloorKm
		}
		band, err := rect(bandMin, orbit.LEOCeilingKm, 0, yMax, color.NRGBA{R: 255, A: 25})
		if err != nil {
			return fmt.Errorf("leo band: %w", err)
		}
		p.Add(band)
	}

	// Stacked bars: filled rectangles per bin, each category stacked on the
	// total of the ones before it.
	bottoms := make([]float64, len(edges)-1)
	for _, bc := range binned {
		fill, err := parseHexColor(cfg.GetColor(string(bc.Category)))
		if err != nil {
			return fmt.Errorf("category %s: %w", bc.Category, err)
		}
		drawn := false
		for i, n := range bc.Counts {
			if n == 0 {
				continue
			}
			bar, err := rect(edges[i], edges[i+1], bottoms[i], bottoms[i]+float64(n), fill)
			if err != nil {
				return fmt.Errorf("bin %d: %w", i, err)
			}
			p.Add(bar)
			bottoms[i] += float64(n)
			drawn = true
		}
		// Matching the source chart: only categories with data get a
		// legend entry.
		if drawn {
			p.Legend.Add(string(bc.Category), swatch{fill})
		}
	}

	if cfg.GetShowISSLine() {
		issLine, err := plotter.NewLine(plotter.XYs{
			{X: orbit.ISSAltitudeKm, Y: 0},
			{X: orbit.ISSAltitudeKm, Y: yMax},
		})
		if err != nil {
			return fmt.Errorf("iss line: %w", err)
		}
		issLine.Color = color.NRGBA{R: 139, A: 255}
		issLine.Width = vg.Points(1.5)
		issLine.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(issLine)
		p.Legend.Add(fmt.Sprintf("ISS Orbit (%.0f km)", orbit.ISSAltitudeKm), issLine)
	}

	// LEO share annotation in the upper left.
	note := fmt.Sprintf("LEO Region (%.0f-%.0f km): %.1f%% of all objects",
		orbit.LEOFloorKm, orbit.LEOCeilingKm, summary.LEOPercent)
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: edges[0] * 1.1, Y: yMax * 0.96}},
		Labels: []string{note},
	})
	if err != nil {
		return fmt.Errorf("annotation: %w", err)
	}
	p.Add(labels)

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return savePNG(p, cfg.GetDPI(), outPath)
}

// savePNG writes the plot at the requested DPI. plot.Save hardcodes the
// default DPI, so draw onto a vgimg canvas directly.
func savePNG(p *plot.Plot, dpi int, outPath string) error {
	c := vgimg.NewWith(
		vgimg.UseWH(plotWidth, plotHeight),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// rect builds a filled axis-aligned rectangle with no outline.
func rect(x0, x1, y0, y1 float64, fill color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	})
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle.Width = 0
	return poly, nil
}

// swatch is a legend thumbnail that fills its box with a solid color, used
// for the stacked bar series.
type swatch struct {
	color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Color, pts)
}

// parseHexColor parses a #rrggbb value.
func parseHexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
