// Package render paints the computed sky onto a terminal cell canvas using
// a stereographic projection centered on the Sun.
package render

import (
	"math"

	"github.com/litescript/ls-zodiac/internal/astro"
)

// visibilityMargin is the cosine-distance cutoff for the far hemisphere.
// Slightly negative rather than zero so points sitting exactly on the limb
// do not flicker in and out between frames.
const visibilityMargin = -0.01

// Point is a projected position in view coordinates. X and Y are bounded
// by the unit view disk for any visible point.
type Point struct {
	X, Y float64
}

// Project maps equatorial coordinates onto the view plane via a
// stereographic projection centered at (centerRA, 0). The center is on the
// celestial equator because the view tracks the Sun, which never strays
// far from it. Returns false when the target is past the far edge of the
// visible hemisphere.
//
// Stereographic (not orthographic): conformal, so local shapes survive,
// and the whole near hemisphere lands inside a bounded disk instead of
// being crushed at the limb.
func Project(targetRA, targetDec, centerRA float64) (Point, bool) {
	dra := degToRad(astro.Normalize180(targetRA - centerRA))
	dec := degToRad(targetDec)

	// Spherical law of cosines with center declination 0
	cosDist := math.Cos(dec) * math.Cos(dra)
	if cosDist < visibilityMargin {
		return Point{}, false
	}

	d := 1 + cosDist
	return Point{
		X: math.Cos(dec) * math.Sin(dra) / d,
		Y: -math.Sin(dec) / d, // increasing declination renders upward
	}, true
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
