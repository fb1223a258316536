// Package astro provides the positional model for the sky map: Sun, Moon,
// planet, and special-point coordinates, zodiac membership, and observer
// horizon math.
package astro

import (
	"math"
	"time"
)

// J2000 is the standard epoch 2000-01-01T12:00 UTC.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Equatorial represents equatorial coordinates (J2000-ish, no precession).
type Equatorial struct {
	RAdeg  float64 // Right Ascension in degrees [0, 360)
	DecDeg float64 // Declination in degrees [-90, +90]
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
}

// DaysSinceJ2000 returns the number of days (fractional) since the J2000.0
// epoch. Negative before the epoch.
func DaysSinceJ2000(t time.Time) float64 {
	return julianDate(t) - 2451545.0
}

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January/February count as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// Normalize360 normalizes an angle to [0, 360) degrees.
func Normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Normalize180 wraps an angle to the (-180, +180] range.
func Normalize180(a float64) float64 {
	a = Normalize360(a)
	if a > 180 {
		a -= 360
	}
	return a
}

// obliquity returns the mean obliquity of the ecliptic in degrees for a
// given day offset from J2000.
func obliquity(n float64) float64 {
	return 23.439 - 0.0000004*n
}

// eclipticToEquatorial converts an ecliptic longitude (latitude assumed 0)
// to equatorial coordinates for the obliquity at day offset n.
func eclipticToEquatorial(lonDeg, n float64) Equatorial {
	eps := degToRad(obliquity(n))
	lon := degToRad(lonDeg)

	ra := math.Atan2(math.Cos(eps)*math.Sin(lon), math.Cos(lon))
	dec := math.Asin(math.Sin(eps) * math.Sin(lon))

	return Equatorial{
		RAdeg:  Normalize360(radToDeg(ra)),
		DecDeg: radToDeg(dec),
	}
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
