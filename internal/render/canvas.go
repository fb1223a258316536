package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// frameRenderer pins a true-color profile so frames keep their colors
// when stdout is not a terminal (piped -frame output, tests).
var frameRenderer = newFrameRenderer()

func newFrameRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// Canvas is the 2D drawing surface: a width×height grid of rune cells with
// foreground and background colors. The caller supplies the dimensions;
// the canvas never resizes itself.
type Canvas struct {
	width  int
	height int
	glyphs [][]rune
	fg     [][]colorful.Color
	bg     [][]colorful.Color
}

// NewCanvas creates a cleared canvas with the given cell dimensions and a
// uniform background.
func NewCanvas(width, height int, background colorful.Color) *Canvas {
	c := &Canvas{width: width, height: height}
	c.glyphs = make([][]rune, height)
	c.fg = make([][]colorful.Color, height)
	c.bg = make([][]colorful.Color, height)
	for y := 0; y < height; y++ {
		c.glyphs[y] = make([]rune, width)
		c.fg[y] = make([]colorful.Color, width)
		c.bg[y] = make([]colorful.Color, width)
		for x := 0; x < width; x++ {
			c.glyphs[y][x] = ' '
			c.fg[y][x] = background
			c.bg[y][x] = background
		}
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Set writes a glyph with a foreground color. Out-of-bounds writes are
// dropped silently.
func (c *Canvas) Set(x, y int, glyph rune, fg colorful.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.glyphs[y][x] = glyph
	c.fg[y][x] = fg
}

// SetIfEmpty writes a glyph only if the cell still holds background. Used
// for glow halos so they never overwrite a body or star.
func (c *Canvas) SetIfEmpty(x, y int, glyph rune, fg colorful.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	if c.glyphs[y][x] != ' ' {
		return
	}
	c.glyphs[y][x] = glyph
	c.fg[y][x] = fg
}

// Fg returns the foreground color at a cell, or the zero color out of
// bounds.
func (c *Canvas) Fg(x, y int) colorful.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return colorful.Color{}
	}
	return c.fg[y][x]
}

// Rune returns the glyph at a cell, or the space rune out of bounds.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.glyphs[y][x]
}

// TintBackground blends a wash color into every cell background at the
// given opacity.
func (c *Canvas) TintBackground(wash colorful.Color, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.bg[y][x] = c.bg[y][x].BlendRgb(wash, opacity)
		}
	}
}

// Label writes text starting at (x, y), running right. Cells outside the
// canvas are dropped; existing glyphs are overwritten, matching how the
// sky labels take priority over background stars.
func (c *Canvas) Label(x, y int, text string, fg colorful.Color) {
	for i, r := range []rune(text) {
		c.Set(x+i, y, r, fg)
	}
}

// Signature returns the glyph grid as plain text, one row per line, with
// no styling. Deterministic for identical draw sequences.
func (c *Canvas) Signature() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		b.WriteString(string(c.glyphs[y]))
		if y < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the canvas with lipgloss styling, row by row.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			style := frameRenderer.NewStyle().
				Foreground(lipgloss.Color(c.fg[y][x].Hex())).
				Background(lipgloss.Color(c.bg[y][x].Hex()))
			b.WriteString(style.Render(string(c.glyphs[y][x])))
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
