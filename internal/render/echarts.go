package render

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/skywatch-data/debris.report/internal/catalog"
	"github.com/skywatch-data/debris.report/internal/config"
	"github.com/skywatch-data/debris.report/internal/stats"
)

// HTMLReport renders an interactive stacked bar version of the altitude
// histogram using go-echarts. The bins match the PNG chart; the x-axis
// labels are each bin's lower edge in km.
func HTMLReport(b catalog.Buckets, summary stats.Summary, cfg *config.PlotConfig, outPath string) error {
	edges, binned := binCategories(b, cfg)

	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.0f", edges[i])
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: cfg.GetTitle(),
			Width:     "1200px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: cfg.GetTitle(),
			Subtitle: fmt.Sprintf("n=%d (skipped %d) | LEO: %.1f%%",
				summary.Total, summary.Skipped, summary.LEOPercent),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Altitude (km)", NameLocation: "middle", NameGap: 35}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Objects"}),
	)

	bar.SetXAxis(labels)
	for _, bc := range binned {
		data := make([]opts.BarData, len(bc.Counts))
		for i, n := range bc.Counts {
			data[i] = opts.BarData{Value: n}
		}
		bar.AddSeries(string(bc.Category), data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "altitude"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: cfg.GetColor(string(bc.Category))}),
		)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create html output: %w", err)
	}
	if err := bar.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render html: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close html output: %w", err)
	}
	return nil
}
