// Package render draws the altitude distribution chart from classified
// catalog buckets, as a 300 DPI PNG and optionally as an interactive HTML
// page.
package render

import (
	"math"

	"github.com/skywatch-data/debris.report/internal/catalog"
	"github.com/skywatch-data/debris.report/internal/config"
)

// LogEdges returns n+1 logarithmically spaced bin edges from min to max.
func LogEdges(min, max float64, n int) []float64 {
	edges := make([]float64, n+1)
	logMin := math.Log10(min)
	logMax := math.Log10(max)
	for i := range edges {
		t := float64(i) / float64(n)
		edges[i] = math.Pow(10, logMin+t*(logMax-logMin))
	}
	// Pin the ends exactly so boundary values bin predictably.
	edges[0] = min
	edges[n] = max
	return edges
}

// histogram counts values into the bins defined by edges. Values outside
// [edges[0], edges[len-1]) are not counted; they still appear in the
// statistics, just not on the chart.
func histogram(values []float64, edges []float64) []int {
	counts := make([]int, len(edges)-1)
	for _, v := range values {
		if v < edges[0] || v >= edges[len(edges)-1] {
			continue
		}
		// Log-spaced edges, so locate the bin directly.
		t := (math.Log10(v) - math.Log10(edges[0])) / (math.Log10(edges[len(edges)-1]) - math.Log10(edges[0]))
		i := int(t * float64(len(counts)))
		if i < 0 {
			i = 0
		}
		if i >= len(counts) {
			i = len(counts) - 1
		}
		// Guard against floating point landing one bin off.
		for i > 0 && v < edges[i] {
			i--
		}
		for i < len(counts)-1 && v >= edges[i+1] {
			i++
		}
		counts[i]++
	}
	return counts
}

// binnedCategory holds one category's bin counts over shared edges.
type binnedCategory struct {
	Category catalog.Category
	Counts   []int
}

// binCategories computes per-category bin counts, in canonical category
// order.
func binCategories(b catalog.Buckets, cfg *config.PlotConfig) ([]float64, []binnedCategory) {
	edges := LogEdges(cfg.GetBinMinKm(), cfg.GetBinMaxKm(), cfg.GetBinCount())
	binned := make([]binnedCategory, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		binned = append(binned, binnedCategory{
			Category: c,
			Counts:   histogram(b.Altitudes[c], edges),
		})
	}
	return edges, binned
}

// maxStackedCount returns the tallest stacked bar across all bins.
func maxStackedCount(binned []binnedCategory) int {
	if len(binned) == 0 {
		return 0
	}
	max := 0
	for i := range binned[0].Counts {
		total := 0
		for _, bc := range binned {
			total += bc.Counts[i]
		}
		if total > max {
			max = total
		}
	}
	return max
}
