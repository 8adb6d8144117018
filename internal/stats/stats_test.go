package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywatch-data/debris.report/internal/catalog"
)

func sampleBuckets() catalog.Buckets {
	return catalog.Buckets{
		Altitudes: map[catalog.Category][]float64{
			catalog.Spacecraft:          {450, 550, 780},
			catalog.RocketBodies:        {800},
			catalog.FragmentationDebris: {1150, 35786},
		},
		Skipped: 2,
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleBuckets())

	require.Equal(t, 6, s.Total)
	require.Equal(t, 2, s.Skipped)

	// 5 of 6 altitudes fall inside [160, 2000].
	assert.InDelta(t, 100*5.0/6.0, s.LEOPercent, 1e-9)

	// Categories come back in canonical order, zero-count ones included.
	require.Len(t, s.Categories, len(catalog.Categories))
	for i, c := range catalog.Categories {
		assert.Equal(t, string(c), s.Categories[i].Category)
	}

	spacecraft := s.Categories[0]
	assert.Equal(t, 3, spacecraft.Count)
	assert.InDelta(t, 50.0, spacecraft.Percent, 1e-9)
	assert.InDelta(t, 450, spacecraft.MinAltitudeKm, 1e-9)
	assert.InDelta(t, 780, spacecraft.MaxAltitudeKm, 1e-9)
	assert.InDelta(t, (450+550+780)/3.0, spacecraft.MeanAltitudeKm, 1e-9)
	assert.InDelta(t, 550, spacecraft.MedianAltitudeKm, 1e-9)

	mission := s.Categories[2]
	assert.Equal(t, 0, mission.Count)
	assert.Zero(t, mission.Percent)
}

// Percentages over the valid rows must sum to 100 within floating point
// tolerance.
func TestSummarizePercentagesSum(t *testing.T) {
	s := Summarize(sampleBuckets())

	sum := 0.0
	for _, c := range s.Categories {
		sum += c.Percent
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentages sum to %f, want 100", sum)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(catalog.Buckets{Altitudes: map[catalog.Category][]float64{}})

	assert.Zero(t, s.Total)
	assert.Zero(t, s.LEOPercent)
	require.Len(t, s.Categories, len(catalog.Categories))
	for _, c := range s.Categories {
		assert.Zero(t, c.Count)
		assert.Zero(t, c.Percent)
		assert.False(t, math.IsNaN(c.Percent), "percent must not be NaN on empty input")
	}
	assert.NotEmpty(t, s.Format())
}

// Running the pipeline twice on identical input must produce identical
// statistics, byte for byte.
func TestSummarizeDeterministic(t *testing.T) {
	a := Summarize(sampleBuckets())
	b := Summarize(sampleBuckets())

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("summaries differ (-first +second):\n%s", diff)
	}
	if a.Format() != b.Format() {
		t.Errorf("formatted summaries differ:\n%q\n%q", a.Format(), b.Format())
	}
}

func TestNewReport(t *testing.T) {
	s := Summarize(sampleBuckets())
	r1 := NewReport("catalog.csv", s)
	r2 := NewReport("catalog.csv", s)

	assert.Equal(t, "catalog.csv", r1.Source)
	assert.NotEmpty(t, r1.RunID)
	assert.NotEqual(t, r1.RunID, r2.RunID, "run IDs must be unique per report")

	// Everything except the run ID is a pure function of the input.
	if diff := cmp.Diff(r1, r2, cmpopts.IgnoreFields(Report{}, "RunID")); diff != "" {
		t.Errorf("reports differ beyond RunID (-r1 +r2):\n%s", diff)
	}
}
