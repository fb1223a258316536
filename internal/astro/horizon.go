package astro

import (
	"math"
	"time"
)

// Horizontal holds observer-relative horizontal coordinates.
type Horizontal struct {
	AltDeg float64 // Altitude in degrees (0 = horizon, 90 = zenith)
	AzDeg  float64 // Azimuth in degrees (0 = N, 90 = E, 180 = S, 270 = W)
}

// SunHorizontal returns the Sun's approximate altitude and azimuth for an
// observer. It deliberately uses a cruder model than SunPosition: a
// single-sine declination and an hour angle straight from the UTC clock
// and observer longitude. It only drives the horizon-fade visual.
func SunHorizontal(t time.Time, obs Observer) Horizontal {
	t = t.UTC()

	doy := float64(t.YearDay())
	dec := degToRad(23.44 * math.Sin(degToRad(360/365.0*(doy-81))))

	hours := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	ha := degToRad(Normalize180(15*(hours-12) + obs.LonDeg))

	lat := degToRad(obs.LatDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp(sinAlt, -1, 1))

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	az := math.Acos(clamp(cosAz, -1, 1))
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  radToDeg(az),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
