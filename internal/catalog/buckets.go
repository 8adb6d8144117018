package catalog

import "github.com/skywatch-data/debris.report/internal/orbit"

// Buckets holds per-category altitude values in input order, plus the
// count of rows that could not contribute an altitude.
type Buckets struct {
	Altitudes map[Category][]float64
	Skipped   int
}

// Bin classifies each record and collects its derived altitude into the
// matching category bucket. Records without a derivable altitude, and
// records whose altitude is implausible, are counted as skipped. Every
// input record lands in exactly one bucket or the skip tally.
func Bin(records []Record) Buckets {
	b := Buckets{Altitudes: make(map[Category][]float64)}
	for _, rec := range records {
		alt, ok := rec.Altitude()
		if !ok || !orbit.Plausible(alt) {
			b.Skipped++
			continue
		}
		c := Classify(rec.ObjectType)
		b.Altitudes[c] = append(b.Altitudes[c], alt)
	}
	return b
}

// Total returns the number of bucketed objects across all categories.
func (b Buckets) Total() int {
	n := 0
	for _, alts := range b.Altitudes {
		n += len(alts)
	}
	return n
}
