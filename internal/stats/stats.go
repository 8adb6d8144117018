// Package stats computes descriptive statistics over classified catalog
// buckets.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/skywatch-data/debris.report/internal/catalog"
	"github.com/skywatch-data/debris.report/internal/orbit"
)

// CategoryStats describes one display category's share of the catalog and
// the distribution of its altitudes.
type CategoryStats struct {
	Category         string  `json:"category"`
	Count            int     `json:"count"`
	Percent          float64 `json:"percent"`
	MinAltitudeKm    float64 `json:"min_altitude_km"`
	MaxAltitudeKm    float64 `json:"max_altitude_km"`
	MeanAltitudeKm   float64 `json:"mean_altitude_km"`
	MedianAltitudeKm float64 `json:"median_altitude_km"`
}

// Summary holds the full statistics for one catalog run. Categories appear
// in the canonical catalog.Categories order, so a Summary for a given input
// is deterministic.
type Summary struct {
	Total      int             `json:"total_objects"`
	Skipped    int             `json:"skipped_rows"`
	LEOPercent float64         `json:"leo_percent"`
	Categories []CategoryStats `json:"categories"`
}

// Summarize computes counts, percentages, LEO-band membership, and
// per-category altitude distributions. Pure function of the bucket data.
// Percentages over an empty catalog are 0, never NaN.
func Summarize(b catalog.Buckets) Summary {
	total := b.Total()

	leo := 0
	for _, alts := range b.Altitudes {
		for _, a := range alts {
			if orbit.InLEO(a) {
				leo++
			}
		}
	}

	s := Summary{Total: total, Skipped: b.Skipped}
	if total > 0 {
		s.LEOPercent = 100 * float64(leo) / float64(total)
	}

	for _, c := range catalog.Categories {
		alts := b.Altitudes[c]
		cs := CategoryStats{Category: string(c), Count: len(alts)}
		if total > 0 {
			cs.Percent = 100 * float64(len(alts)) / float64(total)
		}
		if len(alts) > 0 {
			sorted := append([]float64(nil), alts...)
			sort.Float64s(sorted)
			cs.MinAltitudeKm = sorted[0]
			cs.MaxAltitudeKm = sorted[len(sorted)-1]
			cs.MeanAltitudeKm = stat.Mean(sorted, nil)
			cs.MedianAltitudeKm = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		}
		s.Categories = append(s.Categories, cs)
	}
	return s
}

// Format renders the console summary. The output is a pure function of the
// Summary, so identical inputs produce byte-identical text.
func (s Summary) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Objects with valid altitude: %d (skipped %d rows)\n", s.Total, s.Skipped)
	fmt.Fprintf(&sb, "Within LEO band (%.0f-%.0f km): %.1f%%\n", orbit.LEOFloorKm, orbit.LEOCeilingKm, s.LEOPercent)
	fmt.Fprintf(&sb, "Breakdown by category:\n")
	for _, c := range s.Categories {
		fmt.Fprintf(&sb, "  %-22s %7d (%5.1f%%)", c.Category, c.Count, c.Percent)
		if c.Count > 0 {
			fmt.Fprintf(&sb, "  alt %.0f-%.0f km, median %.0f km", c.MinAltitudeKm, c.MaxAltitudeKm, c.MedianAltitudeKm)
		}
		fmt.Fprintf(&sb, "\n")
	}
	return sb.String()
}
