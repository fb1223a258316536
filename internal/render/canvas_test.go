package render

import (
	"strings"
	"testing"
)

func TestCanvas_SetAndRune(t *testing.T) {
	c := NewCanvas(10, 5, colorNight)

	c.Set(3, 2, '*', colorSun)
	if got := c.Rune(3, 2); got != '*' {
		t.Errorf("Rune(3,2) = %q, want '*'", got)
	}

	// Out-of-bounds writes and reads are silent
	c.Set(-1, 0, 'x', colorSun)
	c.Set(10, 0, 'x', colorSun)
	c.Set(0, 5, 'x', colorSun)
	if got := c.Rune(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Rune = %q, want space", got)
	}
}

func TestCanvas_SetIfEmpty(t *testing.T) {
	c := NewCanvas(4, 4, colorNight)

	c.Set(1, 1, 'A', colorSun)
	c.SetIfEmpty(1, 1, 'B', colorSun)
	if got := c.Rune(1, 1); got != 'A' {
		t.Errorf("SetIfEmpty overwrote occupied cell: %q", got)
	}

	c.SetIfEmpty(2, 2, 'B', colorSun)
	if got := c.Rune(2, 2); got != 'B' {
		t.Errorf("SetIfEmpty skipped empty cell: %q", got)
	}
}

func TestCanvas_Label(t *testing.T) {
	c := NewCanvas(6, 2, colorNight)

	// Overruns the right edge; overflow cells are dropped
	c.Label(3, 0, "Mars", colorLabel)
	row := strings.Split(c.Signature(), "\n")[0]
	if row != "   Mar" {
		t.Errorf("row = %q, want %q", row, "   Mar")
	}
}

func TestCanvas_Signature(t *testing.T) {
	c := NewCanvas(3, 2, colorNight)
	sig := c.Signature()

	lines := strings.Split(sig, "\n")
	if len(lines) != 2 {
		t.Fatalf("signature has %d rows, want 2", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("row %q has wrong width", line)
		}
	}
}

func TestCanvas_StringKeepsColorWithoutTTY(t *testing.T) {
	// Styled output carries true-color escape codes even when stdout is
	// not a terminal, so a piped frame keeps its tint.
	c := NewCanvas(2, 1, colorNight)
	c.Set(0, 0, '*', colorSun)

	out := c.String()
	if !strings.Contains(out, "38;2;") {
		t.Error("styled frame lost its foreground color codes")
	}
	if !strings.Contains(out, "48;2;") {
		t.Error("styled frame lost its background color codes")
	}
}

func TestCanvas_StringDeterministic(t *testing.T) {
	build := func() string {
		c := NewCanvas(8, 4, colorNight)
		c.TintBackground(colorWash, 0.4)
		c.Set(2, 1, '✶', StarColor(0.2))
		c.Label(3, 2, "Vir", colorLabel)
		return c.String()
	}

	if build() != build() {
		t.Error("identical draw sequences produced different output")
	}
}
