// Package catalog reads orbital object catalogs from CSV and classifies
// each object into a display category with a derived altitude.
package catalog

import (
	"strings"

	"github.com/skywatch-data/debris.report/internal/orbit"
)

// Required CSV column names.
const (
	ColObjectType    = "OBJECT_TYPE"
	ColSemimajorAxis = "SEMIMAJOR_AXIS"
	ColApoapsis      = "APOAPSIS"
	ColPeriapsis     = "PERIAPSIS"
)

// RequiredColumns lists the header columns a catalog CSV must carry.
var RequiredColumns = []string{ColObjectType, ColSemimajorAxis, ColApoapsis, ColPeriapsis}

// Category is a display category for tracked objects.
type Category string

// Display categories, in the fixed order used for statistics and chart
// series.
const (
	Spacecraft          Category = "Spacecraft"
	RocketBodies        Category = "Rocket Bodies"
	MissionDebris       Category = "Mission Debris"
	FragmentationDebris Category = "Fragmentation Debris"
)

// Categories is the canonical ordering of display categories.
var Categories = []Category{Spacecraft, RocketBodies, MissionDebris, FragmentationDebris}

// Record is one catalog row. Numeric fields may be absent or unparseable
// in the source CSV; the Has* flags record which ones carried a usable
// value. Axis values are kilometres: apoapsis and periapsis are altitudes
// above the surface, the semimajor axis is measured from the Earth's centre.
type Record struct {
	ObjectType      string
	SemimajorAxisKm float64
	ApoapsisKm      float64
	PeriapsisKm     float64

	HasSemimajorAxis bool
	HasApoapsis      bool
	HasPeriapsis     bool
}

// Classify maps a raw OBJECT_TYPE value to a display category. Matching is
// case-insensitive on the trimmed value. Unrecognised types (including the
// empty string) fall into MissionDebris.
func Classify(objectType string) Category {
	switch strings.ToUpper(strings.TrimSpace(objectType)) {
	case "PAYLOAD":
		return Spacecraft
	case "ROCKET BODY":
		return RocketBodies
	case "DEBRIS":
		return FragmentationDebris
	default:
		return MissionDebris
	}
}

// Altitude derives the record's altitude in km. The mean of apoapsis and
// periapsis is preferred; the semimajor axis minus the Earth radius is the
// fallback. Returns false when neither derivation is possible.
func (r Record) Altitude() (float64, bool) {
	switch {
	case r.HasApoapsis && r.HasPeriapsis:
		return orbit.MeanAltitude(r.ApoapsisKm, r.PeriapsisKm), true
	case r.HasSemimajorAxis:
		return orbit.AltitudeFromSemimajorAxis(r.SemimajorAxisKm), true
	default:
		return 0, false
	}
}
