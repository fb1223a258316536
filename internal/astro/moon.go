package astro

import (
	"math"
	"time"
)

const (
	// SynodicMonth is the Moon's new-to-new period in days.
	SynodicMonth = 29.53058867

	// draconicMonth is the node-to-node period in days, driving the
	// declination oscillation.
	draconicMonth = 27.212220

	// moonDailyMotion is the Moon's mean daily motion relative to the
	// stars, in degrees per day.
	moonDailyMotion = 12.19

	// moonDecAmplitude is the amplitude of the declination swing in
	// degrees (ecliptic obliquity minus orbital inclination coupling is
	// ignored; this is the inclination term alone).
	moonDecAmplitude = 5.145
)

// newMoonEpoch is a reference new moon: 2000-01-06T18:14 UTC.
var newMoonEpoch = time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC)

// MoonState holds the Moon's equatorial position and phase fraction.
type MoonState struct {
	Equatorial
	Phase float64 // [0, 1): 0 = new, 0.5 = full
}

// MoonPosition calculates an approximate lunar position and phase.
//
// The phase fraction is exact to the mean synodic cycle. The RA is the
// Sun's RA advanced by the Moon's mean daily motion over the age of the
// cycle, which keeps the Moon near the Sun at new moon and opposite at
// full; the declination oscillates sinusoidally over the draconic period.
// This is a coarse visual model, not a geocentric lunar theory — a
// higher-fidelity algorithm can replace it behind the same MoonState
// contract without renderer changes.
func MoonPosition(t time.Time) MoonState {
	phase := MoonPhase(t)
	ageDays := phase * SynodicMonth

	sun := SunPosition(t)
	ra := Normalize360(sun.RAdeg + ageDays*moonDailyMotion)

	n := DaysSinceJ2000(t)
	dec := moonDecAmplitude * math.Sin(2*math.Pi*n/draconicMonth)

	return MoonState{
		Equatorial: Equatorial{RAdeg: ra, DecDeg: dec},
		Phase:      phase,
	}
}

// MoonPhase returns the phase fraction [0, 1) at t, anchored to a
// reference new moon.
func MoonPhase(t time.Time) float64 {
	days := t.Sub(newMoonEpoch).Hours() / 24
	phase := math.Mod(days/SynodicMonth, 1)
	if phase < 0 {
		phase += 1
	}
	return phase
}

// Illumination returns the illuminated fraction [0, 1] for a phase
// fraction: 0 at new moon, 1 at full.
func Illumination(phase float64) float64 {
	return (1 - math.Cos(2*math.Pi*phase)) / 2
}

// PhaseName returns the common eight-phase name for a phase fraction.
func PhaseName(phase float64) string {
	switch {
	case phase < 0.0625 || phase >= 0.9375:
		return "New Moon"
	case phase < 0.1875:
		return "Waxing Crescent"
	case phase < 0.3125:
		return "First Quarter"
	case phase < 0.4375:
		return "Waxing Gibbous"
	case phase < 0.5625:
		return "Full Moon"
	case phase < 0.6875:
		return "Waning Gibbous"
	case phase < 0.8125:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}
