package astro

import (
	"math"
	"testing"
	"time"
)

func TestMoonPhase_Anchors(t *testing.T) {
	tests := []struct {
		name      string
		time      time.Time
		want      float64
		tolerance float64
	}{
		{"reference new moon", newMoonEpoch, 0, 1e-9},
		{"first quarter area", newMoonEpoch.Add(time.Duration(SynodicMonth / 4 * 24 * float64(time.Hour))), 0.25, 0.001},
		{"full moon 2000-01-21", time.Date(2000, 1, 21, 4, 40, 0, 0, time.UTC), 0.5, 0.02},
		{"next new moon", newMoonEpoch.Add(time.Duration(SynodicMonth * 24 * float64(time.Hour))), 0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoonPhase(tt.time)
			// Compare on the phase circle
			diff := math.Abs(got - tt.want)
			if diff > 0.5 {
				diff = 1 - diff
			}
			if diff > tt.tolerance {
				t.Errorf("MoonPhase() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestMoonPhase_Periodic(t *testing.T) {
	// phase(t + synodic month) ~ phase(t) for arbitrary instants
	instants := []time.Time{
		J2000,
		time.Date(1987, 7, 3, 9, 30, 0, 0, time.UTC),
		time.Date(2033, 11, 18, 23, 59, 0, 0, time.UTC),
	}
	period := time.Duration(SynodicMonth * 24 * float64(time.Hour))

	for _, at := range instants {
		a := MoonPhase(at)
		b := MoonPhase(at.Add(period))
		diff := math.Abs(a - b)
		if diff > 0.5 {
			diff = 1 - diff
		}
		if diff > 1e-6 {
			t.Errorf("phase not periodic at %v: %v vs %v", at, a, b)
		}
	}
}

func TestMoonPhase_Range(t *testing.T) {
	start := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 365; d += 3 {
		phase := MoonPhase(start.AddDate(0, 0, d))
		if phase < 0 || phase >= 1 {
			t.Fatalf("phase %v out of [0, 1) at day %d", phase, d)
		}
	}
}

func TestMoonPosition_TracksSun(t *testing.T) {
	// At new moon the Moon's RA sits near the Sun's; near full moon it is
	// roughly opposite.
	newMoon := newMoonEpoch
	m := MoonPosition(newMoon)
	s := SunPosition(newMoon)
	if d := math.Abs(Normalize180(m.RAdeg - s.RAdeg)); d > 5 {
		t.Errorf("new moon RA offset from Sun = %.1f°, want < 5°", d)
	}

	full := newMoon.Add(time.Duration(SynodicMonth / 2 * 24 * float64(time.Hour)))
	m = MoonPosition(full)
	s = SunPosition(full)
	if d := math.Abs(Normalize180(m.RAdeg - s.RAdeg)); d < 160 {
		t.Errorf("full moon RA offset from Sun = %.1f°, want near 180°", d)
	}
}

func TestMoonPosition_DecBounded(t *testing.T) {
	start := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 60; d++ {
		m := MoonPosition(start.AddDate(0, 0, d))
		if math.Abs(m.DecDeg) > moonDecAmplitude+1e-9 {
			t.Fatalf("day %d: declination %v beyond amplitude", d, m.DecDeg)
		}
		if m.RAdeg < 0 || m.RAdeg >= 360 {
			t.Fatalf("day %d: RA %v out of range", d, m.RAdeg)
		}
	}
}

func TestIllumination(t *testing.T) {
	tests := []struct {
		phase float64
		want  float64
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
	}

	for _, tt := range tests {
		got := Illumination(tt.phase)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Illumination(%v) = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

func TestPhaseName(t *testing.T) {
	tests := []struct {
		phase float64
		want  string
	}{
		{0, "New Moon"},
		{0.97, "New Moon"},
		{0.12, "Waxing Crescent"},
		{0.25, "First Quarter"},
		{0.5, "Full Moon"},
		{0.75, "Last Quarter"},
		{0.9, "Waning Crescent"},
	}

	for _, tt := range tests {
		if got := PhaseName(tt.phase); got != tt.want {
			t.Errorf("PhaseName(%v) = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
