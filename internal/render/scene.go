package render

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-zodiac/internal/astro"
	"github.com/litescript/ls-zodiac/internal/catalog"
)

const (
	// Terminal cells are roughly twice as tall as wide; x distances are
	// stretched by this factor so disks read as circles.
	cellAspect = 2.0

	// Star sizing: radius = starBaseRadius - starMagScale*mag, clamped.
	starBaseRadius = 1.9
	starMagScale   = 0.45
	starMinRadius  = 0.4

	// Only stars brighter than this get a glow halo.
	starGlowCutoff = 1.0

	// Ground wash opacity floor and ramp over sun altitude [-5°, +5°].
	washFloor   = 0.08
	washRampLow = -5.0
	washRampHi  = 5.0

	moonRadius = 2.0
)

var (
	colorNight    = mustHex("#0c0e16")
	colorWash     = mustHex("#8fa8c9")
	colorLineDim  = mustHex("#3a4060")
	colorLineGlow = mustHex("#5a4a8a")
	colorLineHot  = mustHex("#b49aff")
	colorLabel    = mustHex("#d0c8ff")
	colorPlanet   = mustHex("#ffd9a0")
	colorHalo     = mustHex("#55506e")
	colorPoint    = mustHex("#9fe8d0")
	colorMoonDark = mustHex("#3c3f4a")
	colorMoonLit  = mustHex("#e8e6da")
	colorSun      = mustHex("#ffdf66")
	colorSunHalo  = mustHex("#aa8c3c")
)

// Five-bucket palette for the B-V color index, blue-white through red.
var bvPalette = []struct {
	upTo float64
	c    colorful.Color
}{
	{0.0, mustHex("#aabfff")},
	{0.35, mustHex("#f2f1ff")},
	{0.75, mustHex("#fff2d8")},
	{1.25, mustHex("#ffd9a0")},
	{math.Inf(1), mustHex("#ff9e6b")},
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// StarColor maps a B-V color index onto the five-bucket palette.
func StarColor(bv float64) colorful.Color {
	for _, b := range bvPalette {
		if bv < b.upTo {
			return b.c
		}
	}
	return bvPalette[len(bvPalette)-1].c
}

// Scene holds the read-only catalogs. Rendering carries no other state:
// every frame is recomputed in full from the Params.
type Scene struct {
	Stars          []catalog.Star
	Constellations []catalog.Constellation
}

// Params are the per-frame inputs supplied by the host.
type Params struct {
	Time           time.Time
	Observer       *astro.Observer // nil: no horizon layer
	RotationOffset float64         // degrees added to the Sun's RA to pan
	Width, Height  int
}

// Frame is one rendered frame plus the sky state behind it, for the host
// application's chrome.
type Frame struct {
	Canvas        *Canvas
	Sun           astro.SunState
	Moon          astro.MoonState
	Constellation string // 3-letter code of the Sun's zodiacal constellation
	TropicalSign  string
	SunAltitude   float64 // only meaningful when an observer was supplied
}

// viewport maps projected view-disk coordinates to canvas cells.
type viewport struct {
	cx, cy   float64
	scale    float64
	centerRA float64
}

func newViewport(width, height int, centerRA float64) viewport {
	r := math.Min(float64(width)/(2*cellAspect), float64(height)/2) - 1
	if r < 1 {
		r = 1
	}
	return viewport{
		cx:       float64(width) / 2,
		cy:       float64(height) / 2,
		scale:    r,
		centerRA: centerRA,
	}
}

// place projects equatorial coordinates and maps them to cell coordinates.
func (v viewport) place(ra, dec float64) (float64, float64, bool) {
	p, ok := Project(ra, dec, v.centerRA)
	if !ok {
		return 0, 0, false
	}
	return v.cx + p.X*v.scale*cellAspect, v.cy + p.Y*v.scale, true
}

// Render paints one frame. Deterministic and idempotent: identical inputs
// and an untouched catalog produce an identical frame.
func (s *Scene) Render(p Params) Frame {
	sun := astro.SunPosition(p.Time)
	moon := astro.MoonPosition(p.Time)
	active := astro.ZodiacConstellation(sun.EclipticLon)

	centerRA := astro.Normalize360(sun.RAdeg + p.RotationOffset)
	view := newViewport(p.Width, p.Height, centerRA)

	c := NewCanvas(p.Width, p.Height, colorNight)

	// Layer 1: ground wash, only with an observer. Opacity ramps with the
	// sun's horizon altitude; foreground layers fade toward the wash by
	// the same factor so daylight hides the stars instead of hard-cutting.
	fade := 0.0
	sunAlt := 0.0
	if p.Observer != nil {
		hor := astro.SunHorizontal(p.Time, *p.Observer)
		sunAlt = hor.AltDeg
		opacity := (hor.AltDeg - washRampLow) / (washRampHi - washRampLow)
		if opacity < washFloor {
			opacity = washFloor
		}
		if opacity > 1 {
			opacity = 1
		}
		c.TintBackground(colorWash, opacity)
		fade = opacity
	}

	s.drawConstellations(c, view, active, fade)
	s.drawStars(c, view, fade)
	s.drawPlanets(c, view, p.Time, fade)
	s.drawSpecialPoints(c, view, p.Time, fade)
	s.drawMoon(c, view, moon, fade)
	s.drawSun(c, view, sun)
	s.labelActive(c, view, active, fade)

	return Frame{
		Canvas:        c,
		Sun:           sun,
		Moon:          moon,
		Constellation: active,
		TropicalSign:  astro.TropicalSign(p.Time),
		SunAltitude:   sunAlt,
	}
}

// faded blends a foreground color toward the ground wash.
func faded(base colorful.Color, fade float64) colorful.Color {
	if fade <= 0 {
		return base
	}
	return base.BlendRgb(colorWash, fade)
}

// Layer 2: constellation polylines. A vertex past the visible hemisphere
// closes the current subpath; no segment is drawn across the far side. The
// constellation holding the Sun is drawn hot with a glow, the rest dim.
func (s *Scene) drawConstellations(c *Canvas, view viewport, active string, fade float64) {
	for _, con := range s.Constellations {
		hot := con.Code == active
		lineColor := faded(colorLineDim, fade)
		if hot {
			lineColor = faded(colorLineHot, fade)
		}

		for _, line := range con.Lines {
			havePrev := false
			var px, py float64
			for _, vtx := range line {
				x, y, ok := view.place(vtx.RAdeg, vtx.DecDeg)
				if !ok {
					havePrev = false
					continue
				}
				if havePrev {
					drawSegment(c, px, py, x, y, lineColor, hot, fade)
				}
				havePrev = true
				px, py = x, y
			}
		}
	}
}

// labelActive names the Sun's constellation at the centroid of its visible
// vertices. Drawn as the final pass so no body layer clobbers the text,
// matching how the sky labels take priority.
func (s *Scene) labelActive(c *Canvas, view viewport, active string, fade float64) {
	for _, con := range s.Constellations {
		if con.Code != active {
			continue
		}
		var sx, sy float64
		n := 0
		for _, line := range con.Lines {
			for _, vtx := range line {
				x, y, ok := view.place(vtx.RAdeg, vtx.DecDeg)
				if !ok {
					continue
				}
				sx += x
				sy += y
				n++
			}
		}
		if n > 0 {
			cx := int(math.Round(sx / float64(n)))
			cy := int(math.Round(sy / float64(n)))
			c.Label(cx-len(con.Name)/2, cy-1, con.Name, faded(colorLabel, fade))
		}
		return
	}
}

// drawSegment plots a line between two cell positions. Hot segments get a
// soft glow on neighboring empty cells, standing in for width and bloom.
func drawSegment(c *Canvas, x0, y0, x1, y1 float64, color colorful.Color, hot bool, fade float64) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps < 1 {
		steps = 1
	}
	glow := faded(colorLineGlow, fade)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + (x1-x0)*t))
		y := int(math.Round(y0 + (y1-y0)*t))
		c.Set(x, y, '·', color)
		if hot {
			c.SetIfEmpty(x-1, y, '·', glow)
			c.SetIfEmpty(x+1, y, '·', glow)
		}
	}
}

// Layer 3: background stars. Radius shrinks with magnitude, color comes
// from the B-V bucket, and only bright stars get a halo so the field does
// not bloom everywhere.
func (s *Scene) drawStars(c *Canvas, view viewport, fade float64) {
	for _, star := range s.Stars {
		x, y, ok := view.place(star.RAdeg, star.DecDeg)
		if !ok {
			continue
		}

		radius := starBaseRadius - starMagScale*star.Mag
		if radius < starMinRadius {
			radius = starMinRadius
		}

		color := faded(StarColor(star.ColorIndex), fade)
		xi, yi := int(math.Round(x)), int(math.Round(y))
		c.Set(xi, yi, starGlyph(radius), color)

		if star.Mag < starGlowCutoff {
			halo := faded(colorHalo, fade)
			c.SetIfEmpty(xi-1, yi, '·', halo)
			c.SetIfEmpty(xi+1, yi, '·', halo)
		}
	}
}

// starGlyph picks a glyph for a render radius; bigger radius, heavier mark.
func starGlyph(radius float64) rune {
	switch {
	case radius >= 1.6:
		return '✶'
	case radius >= 1.1:
		return '✦'
	case radius >= 0.7:
		return '*'
	default:
		return '·'
	}
}

// Layer 4: planets. Halo, solid disk, ring outline for the ringed one,
// label offset down and to the right.
func (s *Scene) drawPlanets(c *Canvas, view viewport, t time.Time, fade float64) {
	body := faded(colorPlanet, fade)
	label := faded(colorLabel, fade)
	halo := faded(colorHalo, fade)
	for _, planet := range astro.Planets {
		pos := planet.Position(t)
		x, y, ok := view.place(pos.RAdeg, pos.DecDeg)
		if !ok {
			continue
		}
		xi, yi := int(math.Round(x)), int(math.Round(y))

		drawHalo(c, xi, yi, halo)
		if planet.Ringed {
			c.SetIfEmpty(xi-2, yi, '(', body)
			c.SetIfEmpty(xi+2, yi, ')', body)
		}
		c.Set(xi, yi, planet.Symbol, body)
		c.Label(xi+2, yi+1, planet.Name, label)
	}
}

// Layer 5: special points. The node renders as a diamond, the others as
// glowing disks, all labeled.
func (s *Scene) drawSpecialPoints(c *Canvas, view viewport, t time.Time, fade float64) {
	body := faded(colorPoint, fade)
	label := faded(colorLabel, fade)
	halo := faded(colorHalo, fade)
	for _, pt := range astro.SpecialPoints {
		pos := pt.Position(t)
		x, y, ok := view.place(pos.RAdeg, pos.DecDeg)
		if !ok {
			continue
		}
		xi, yi := int(math.Round(x)), int(math.Round(y))

		glyph := '✧'
		if pt.Kind == astro.PointNode {
			glyph = '◇'
		} else {
			drawHalo(c, xi, yi, halo)
		}
		c.Set(xi, yi, glyph, body)
		c.Label(xi+2, yi, pt.Name, label)
	}
}

// Layer 6: the Moon. A dark disk with a halo, then the illuminated
// silhouette. The lit region is bounded by the terminator ellipse of
// semi-width |1-2f|·radius, which morphs continuously from crescent
// through full and back as the phase advances.
func (s *Scene) drawMoon(c *Canvas, view viewport, moon astro.MoonState, fade float64) {
	x, y, ok := view.place(moon.RAdeg, moon.DecDeg)
	if !ok {
		return
	}
	xi, yi := int(math.Round(x)), int(math.Round(y))

	lit := faded(colorMoonLit, fade)
	dark := faded(colorMoonDark, fade)
	halo := faded(colorHalo, fade)

	f := 1 - moon.Phase

	// Lit limb faces the Sun, which sits at the view center.
	dir := 1.0
	if x > view.cx {
		dir = -1
	}

	r := moonRadius
	ri := int(r)
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri * int(cellAspect); dx <= ri*int(cellAspect); dx++ {
			u := float64(dx) / cellAspect
			v := float64(dy)
			if u*u+v*v > r*r {
				continue
			}
			glyph, color := '●', dark
			if moonLit(u*dir, v, f, r) {
				glyph, color = '●', lit
			}
			c.Set(xi+dx, yi+dy, glyph, color)
		}
	}
	drawHalo(c, xi, yi-ri-1, halo)
	drawHalo(c, xi, yi+ri+1, halo)
}

// moonLit reports whether a point of the lunar disk (u toward the lit
// limb, v vertical, both in cell-radius units) falls in the illuminated
// region for lit fraction f. The terminator at height v sits at
// (1-2f)·sqrt(r²-v²): the half-circle-plus-ellipse crescent and the
// complementary gibbous construction collapse to this single bound.
func moonLit(u, v, f, r float64) bool {
	w := r*r - v*v
	if w < 0 {
		return false
	}
	return u >= (1-2*f)*math.Sqrt(w)
}

// Layer 7: the Sun, always topmost and exempt from the daylight fade.
func (s *Scene) drawSun(c *Canvas, view viewport, sun astro.SunState) {
	x, y, ok := view.place(sun.RAdeg, sun.DecDeg)
	if !ok {
		return
	}
	xi, yi := int(math.Round(x)), int(math.Round(y))

	drawHalo(c, xi, yi, colorSunHalo)
	c.SetIfEmpty(xi-2, yi, '·', colorSunHalo)
	c.SetIfEmpty(xi+2, yi, '·', colorSunHalo)
	c.Set(xi, yi, '☉', colorSun)
}

// drawHalo scatters a four-cell glow around a body center.
func drawHalo(c *Canvas, x, y int, color colorful.Color) {
	c.SetIfEmpty(x-1, y, '·', color)
	c.SetIfEmpty(x+1, y, '·', color)
	c.SetIfEmpty(x, y-1, '·', color)
	c.SetIfEmpty(x, y+1, '·', color)
}
