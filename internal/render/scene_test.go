package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-zodiac/internal/astro"
	"github.com/litescript/ls-zodiac/internal/catalog"
)

func testScene() *Scene {
	return &Scene{
		Stars:          catalog.Stars(),
		Constellations: catalog.Constellations(),
	}
}

func testParams() Params {
	return Params{
		Time:   time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC),
		Width:  80,
		Height: 32,
	}
}

func TestRender_Idempotent(t *testing.T) {
	s := testScene()
	p := testParams()

	a := s.Render(p)
	b := s.Render(p)

	if a.Canvas.Signature() != b.Canvas.Signature() {
		t.Error("identical inputs produced different glyph grids")
	}
	if a.Canvas.String() != b.Canvas.String() {
		t.Error("identical inputs produced different styled frames")
	}
	if a.Sun != b.Sun || a.Moon != b.Moon || a.Constellation != b.Constellation {
		t.Error("identical inputs produced different sky state")
	}
}

func TestRender_SunAtCenter(t *testing.T) {
	s := testScene()
	p := testParams()

	frame := s.Render(p)

	// No rotation offset: the Sun sits on the center column, shifted
	// vertically by its own declination (at most ~3 cells at this scale)
	col := p.Width / 2
	found := false
	for dy := -4; dy <= 4; dy++ {
		if frame.Canvas.Rune(col, p.Height/2+dy) == '☉' {
			found = true
		}
	}
	if !found {
		t.Errorf("sun glyph not on center column %d near the view center", col)
	}
}

func TestRender_RotationMovesSun(t *testing.T) {
	s := testScene()
	p := testParams()
	p.RotationOffset = 40

	frame := s.Render(p)

	if got := frame.Canvas.Rune(p.Width/2, p.Height/2); got == '☉' {
		t.Error("sun still at center despite rotation offset")
	}
	if !strings.ContainsRune(frame.Canvas.Signature(), '☉') {
		t.Error("sun not drawn anywhere after a 40° pan")
	}
}

func TestRender_EmptyCatalogsSkipLayers(t *testing.T) {
	// Absent catalog groups are skipped, not errors
	s := &Scene{}
	p := testParams()

	frame := s.Render(p)

	if !strings.ContainsRune(frame.Canvas.Signature(), '☉') {
		t.Error("sun missing with empty catalogs")
	}
	if frame.Constellation == "" {
		t.Error("zodiac membership missing with empty catalogs")
	}
}

func TestRender_ObserverAddsWash(t *testing.T) {
	s := testScene()

	// Midday in midsummer: the ground wash should brighten the frame
	day := Params{
		Time:     time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC),
		Observer: &astro.Observer{LatDeg: 45, LonDeg: 0},
		Width:    60,
		Height:   24,
	}
	night := day
	night.Observer = nil

	if s.Render(day).Canvas.String() == s.Render(night).Canvas.String() {
		t.Error("observer horizon layer had no effect on the frame")
	}

	if alt := s.Render(day).SunAltitude; alt < 30 {
		t.Errorf("midsummer noon sun altitude = %.1f, want high", alt)
	}
}

func TestDrawPlanets_DaylightFade(t *testing.T) {
	at := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	var venus astro.Planet
	for _, pl := range astro.Planets {
		if pl.Name == "Venus" {
			venus = pl
		}
	}
	if venus.Name == "" {
		t.Fatal("venus missing from the planet table")
	}
	pos := venus.Position(at)

	// Center the view on Venus and draw at full daylight: every body
	// color must collapse onto the wash color.
	view := newViewport(60, 24, pos.RAdeg)
	c := NewCanvas(60, 24, colorNight)
	s := &Scene{}
	s.drawPlanets(c, view, at, 1)

	x, y, ok := view.place(pos.RAdeg, pos.DecDeg)
	if !ok {
		t.Fatal("venus invisible in a view centered on it")
	}
	xi, yi := int(math.Round(x)), int(math.Round(y))
	if c.Rune(xi, yi) == ' ' {
		t.Fatal("nothing drawn at venus's cell")
	}
	if got := c.Fg(xi, yi); got.DistanceRgb(colorWash) > 1e-6 {
		t.Errorf("fully daylit planet color = %v, want the wash color %v", got.Hex(), colorWash.Hex())
	}
}

func TestLabelActive_CentroidRounding(t *testing.T) {
	// Both vertices land at column 40.81, so the centroid rounds to 41
	// and the six-rune name starts three cells left of it.
	s := &Scene{Constellations: []catalog.Constellation{{
		Code: "Tst",
		Name: "Tester",
		Lines: [][]catalog.Vertex{{
			{RAdeg: 103.1, DecDeg: 0},
			{RAdeg: 103.1, DecDeg: 0},
		}},
	}}}
	view := newViewport(80, 32, 100)
	c := NewCanvas(80, 32, colorNight)

	s.labelActive(c, view, "Tst", 0)

	if got := c.Rune(38, 15); got != 'T' {
		t.Errorf("cell (38,15) = %q, want the label start", got)
	}
	if got := c.Rune(37, 15); got != ' ' {
		t.Errorf("cell (37,15) = %q, want background", got)
	}
}

func TestRender_ActiveConstellationLabeled(t *testing.T) {
	s := testScene()
	p := testParams()

	frame := s.Render(p)

	var name string
	for _, c := range s.Constellations {
		if c.Code == frame.Constellation {
			name = c.Name
		}
	}
	if name == "" {
		t.Fatalf("active code %q not in catalog", frame.Constellation)
	}
	if !strings.Contains(frame.Canvas.Signature(), name) {
		t.Errorf("active constellation %q not labeled on canvas", name)
	}
}

func TestMoonLit_Fractions(t *testing.T) {
	const r = 2.0

	// f=1: fully lit; f=0: fully dark; f=0.5: exactly the near half
	samples := []struct{ u, v float64 }{
		{0, 0}, {1, 0}, {-1, 0}, {0.5, 1}, {-0.5, -1},
	}

	for _, s := range samples {
		if !moonLit(s.u, s.v, 1, r) {
			t.Errorf("f=1: (%v,%v) dark, want lit", s.u, s.v)
		}
		if moonLit(s.u, s.v, 0, r) && s.u < math.Sqrt(r*r-s.v*s.v)-1e-9 {
			t.Errorf("f=0: (%v,%v) lit, want dark", s.u, s.v)
		}
	}

	if !moonLit(0.5, 0, 0.5, r) {
		t.Error("f=0.5: near-side point dark")
	}
	if moonLit(-0.5, 0, 0.5, r) {
		t.Error("f=0.5: far-side point lit")
	}
	if !moonLit(0, 0, 0.5, r) {
		t.Error("f=0.5: terminator itself should count as lit")
	}
}

func TestMoonLit_Monotone(t *testing.T) {
	// Growing f only ever adds lit area
	const r = 2.0
	for v := -1.5; v <= 1.5; v += 0.5 {
		for u := -1.8; u <= 1.8; u += 0.3 {
			lit := false
			for f := 0.0; f <= 1.0; f += 0.05 {
				now := moonLit(u, v, f, r)
				if lit && !now {
					t.Fatalf("(%v,%v): lit at smaller f but dark at %v", u, v, f)
				}
				if now {
					lit = true
				}
			}
		}
	}
}

func TestStarColor_Buckets(t *testing.T) {
	// Bluest and reddest indices land in the extreme buckets, and the
	// mapping is monotone across the palette
	blue := StarColor(-0.3)
	red := StarColor(2.0)
	if blue == red {
		t.Fatal("extreme B-V values share a bucket")
	}
	if blue != bvPalette[0].c {
		t.Error("B-V -0.3 not in the blue-white bucket")
	}
	if red != bvPalette[len(bvPalette)-1].c {
		t.Error("B-V 2.0 not in the red bucket")
	}

	prev := -1
	for _, bv := range []float64{-0.2, 0.1, 0.5, 1.0, 1.6} {
		c := StarColor(bv)
		idx := -1
		for i, b := range bvPalette {
			if b.c == c {
				idx = i
			}
		}
		if idx < prev {
			t.Fatalf("bucket order broke at B-V %v", bv)
		}
		prev = idx
	}
}

func TestRender_MoonDrawn(t *testing.T) {
	s := testScene()

	// Near first quarter the Moon sits ~90° east of the Sun: inside the
	// visible hemisphere, so both lit and dark cells should appear
	p := Params{
		Time:   time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC),
		Width:  100,
		Height: 40,
	}
	frame := s.Render(p)

	phase := frame.Moon.Phase
	if phase < 0.2 || phase > 0.3 {
		t.Fatalf("expected near first quarter, got phase %v", phase)
	}
	if !strings.ContainsRune(frame.Canvas.Signature(), '●') {
		t.Error("moon disk cells missing from frame")
	}
}
