package astro

import (
	"math"
	"time"
)

// SunState holds the Sun's equatorial position and its ecliptic longitude.
// The ecliptic longitude is the input to zodiac membership.
type SunState struct {
	Equatorial
	EclipticLon float64 // degrees [0, 360)
}

// SunPosition calculates the Sun's position from mean elements with a
// two-harmonic equation-of-center correction.
// Accuracy: ~0.01 degrees near 2000, degrading slowly for distant dates
// (no precession or nutation terms).
func SunPosition(t time.Time) SunState {
	n := DaysSinceJ2000(t)

	// Mean longitude and mean anomaly (degrees)
	L := 280.460 + 0.9856474*n
	g := degToRad(Normalize360(357.528 + 0.9856003*n))

	// Ecliptic longitude with equation of center
	lambda := Normalize360(L + 1.915*math.Sin(g) + 0.020*math.Sin(2*g))

	eq := eclipticToEquatorial(lambda, n)
	return SunState{Equatorial: eq, EclipticLon: lambda}
}
