package astro

import (
	"math"
	"time"
)

// orbit holds mean circular-orbit elements: semi-major axis in AU, mean
// longitude at J2000 in degrees, and orbital period in days. Eccentricity
// and inclination are ignored; this places a dot in roughly the right
// constellation, nothing more.
type orbit struct {
	a      float64
	l0     float64
	period float64
}

// Planet is one of the seven classical non-Earth planets.
type Planet struct {
	Name   string
	Symbol rune
	Ringed bool
	orbit  orbit
}

var earthOrbit = orbit{a: 1.000, l0: 100.464, period: 365.256}

// Planets lists the modeled planets in heliocentric order.
var Planets = []Planet{
	{Name: "Mercury", Symbol: '☿', orbit: orbit{a: 0.387, l0: 252.251, period: 87.969}},
	{Name: "Venus", Symbol: '♀', orbit: orbit{a: 0.723, l0: 181.980, period: 224.701}},
	{Name: "Mars", Symbol: '♂', orbit: orbit{a: 1.524, l0: 355.453, period: 686.980}},
	{Name: "Jupiter", Symbol: '♃', orbit: orbit{a: 5.203, l0: 34.396, period: 4332.589}},
	{Name: "Saturn", Symbol: '♄', Ringed: true, orbit: orbit{a: 9.537, l0: 49.954, period: 10759.22}},
	{Name: "Uranus", Symbol: '♅', orbit: orbit{a: 19.191, l0: 313.238, period: 30688.5}},
	{Name: "Neptune", Symbol: '♆', orbit: orbit{a: 30.069, l0: 304.880, period: 60182}},
}

// heliocentric returns the in-plane position of a body on its mean
// circular orbit at day offset n.
func (o orbit) heliocentric(n float64) (x, y float64) {
	l := degToRad(Normalize360(o.l0 + (360/o.period)*n))
	return o.a * math.Cos(l), o.a * math.Sin(l)
}

// Position returns the planet's geocentric equatorial coordinates at t.
// The geocentric ecliptic longitude comes from vector-subtracting Earth's
// own circular-orbit position from the planet's.
func (p Planet) Position(t time.Time) Equatorial {
	n := DaysSinceJ2000(t)

	px, py := p.orbit.heliocentric(n)
	ex, ey := earthOrbit.heliocentric(n)

	lon := Normalize360(radToDeg(math.Atan2(py-ey, px-ex)))
	return eclipticToEquatorial(lon, n)
}

// GeocentricLongitude returns the planet's geocentric ecliptic longitude
// in degrees [0, 360) at t.
func (p Planet) GeocentricLongitude(t time.Time) float64 {
	n := DaysSinceJ2000(t)
	px, py := p.orbit.heliocentric(n)
	ex, ey := earthOrbit.heliocentric(n)
	return Normalize360(radToDeg(math.Atan2(py-ey, px-ex)))
}
