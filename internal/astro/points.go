package astro

import "time"

// PointKind distinguishes the rendering treatment of special points.
type PointKind int

const (
	PointNode   PointKind = iota // drawn as a diamond
	PointApogee                  // glowing disk
	PointBody                    // glowing disk
)

// SpecialPoint is a linear-rate ecliptic point: the mean lunar ascending
// node, the mean lunar apogee ("Lilith"), and Chiron. Longitude at day
// offset n is l0 + rate*n; the node's rate is negative (it regresses).
type SpecialPoint struct {
	Name string
	Kind PointKind
	l0   float64 // mean longitude at J2000, degrees
	rate float64 // degrees per day
}

// SpecialPoints lists the modeled points.
var SpecialPoints = []SpecialPoint{
	{Name: "Node", Kind: PointNode, l0: 125.08, rate: -0.0529539},
	{Name: "Lilith", Kind: PointApogee, l0: 83.35, rate: 0.111404},
	{Name: "Chiron", Kind: PointBody, l0: 251.0, rate: 0.01955},
}

// Longitude returns the point's mean ecliptic longitude in degrees
// [0, 360) at t.
func (p SpecialPoint) Longitude(t time.Time) float64 {
	n := DaysSinceJ2000(t)
	return Normalize360(p.l0 + p.rate*n)
}

// Position returns the point's equatorial coordinates at t (ecliptic
// latitude assumed zero, like the planets).
func (p SpecialPoint) Position(t time.Time) Equatorial {
	return eclipticToEquatorial(p.Longitude(t), DaysSinceJ2000(t))
}
