// Package orbit provides shared orbital constants and altitude helpers
package orbit

// Altitude constants in kilometres above the Earth's surface, except
// EarthRadiusKm which is measured from the Earth's centre.
const (
	EarthRadiusKm = 6371.0
	ISSAltitudeKm = 400.0

	// LEO band bounds
	LEOFloorKm   = 160.0
	LEOCeilingKm = 2000.0

	// MaxPlausibleAltitudeKm is the cutoff above which a catalog altitude
	// is treated as a data error rather than a real orbit.
	MaxPlausibleAltitudeKm = 50000.0
)

// MeanAltitude returns the mean of the apoapsis and periapsis altitudes.
// Both inputs are altitudes above the surface, not radii.
func MeanAltitude(apoapsisKm, periapsisKm float64) float64 {
	return (apoapsisKm + periapsisKm) / 2
}

// AltitudeFromSemimajorAxis converts a semimajor axis (measured from the
// Earth's centre) to an altitude above the surface.
func AltitudeFromSemimajorAxis(semimajorAxisKm float64) float64 {
	return semimajorAxisKm - EarthRadiusKm
}

// InLEO reports whether the altitude falls within the LEO band.
func InLEO(altitudeKm float64) bool {
	return altitudeKm >= LEOFloorKm && altitudeKm <= LEOCeilingKm
}

// Plausible reports whether the altitude is physically sensible for a
// tracked object. Negative, zero, and absurdly high values indicate bad
// catalog rows and are excluded from plotting.
func Plausible(altitudeKm float64) bool {
	return altitudeKm > 0 && altitudeKm < MaxPlausibleAltitudeKm
}
