// Package ui provides the interactive terminal sky map.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-zodiac/internal/astro"
	"github.com/litescript/ls-zodiac/internal/render"
)

const (
	panStep = 10.0 // degrees per keypress

	chromeLines = 4 // header + blank + blank + status
)

// Model is the bubbletea model for the sky map. All view state — the
// instant, the observer, the pan offset — lives here and is passed into
// the renderer each frame; the renderer itself carries none of it.
type Model struct {
	width  int
	height int

	scene render.Scene

	at        time.Time
	observer  *astro.Observer
	showHoriz bool
	panOffset float64 // degrees added to the Sun's RA
}

// New creates a sky map model over the given catalogs.
func New(scene render.Scene, at time.Time, observer *astro.Observer) Model {
	return Model{
		scene:     scene,
		at:        at.UTC(),
		observer:  observer,
		showHoriz: observer != nil,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		// Pan the view around the Sun
		case "left":
			m.panOffset = astro.Normalize180(m.panOffset - panStep)
		case "right":
			m.panOffset = astro.Normalize180(m.panOffset + panStep)
		case "0":
			m.panOffset = 0

		// Time stepping
		case "h":
			m.at = m.at.Add(-time.Hour)
		case "l":
			m.at = m.at.Add(time.Hour)
		case "j":
			m.at = m.at.AddDate(0, 0, -1)
		case "k":
			m.at = m.at.AddDate(0, 0, 1)
		case "J":
			m.at = m.at.AddDate(0, -1, 0)
		case "K":
			m.at = m.at.AddDate(0, 1, 0)
		case "n":
			m.at = time.Now().UTC()

		// Horizon layer toggle (needs an observer)
		case "g":
			if m.observer != nil {
				m.showHoriz = !m.showHoriz
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width < 24 || m.height < 10 {
		return "Sky map requires a larger terminal"
	}

	params := render.Params{
		Time:           m.at,
		RotationOffset: m.panOffset,
		Width:          m.width,
		Height:         m.height - chromeLines,
	}
	if m.showHoriz {
		params.Observer = m.observer
	}

	frame := m.scene.Render(params)

	var b strings.Builder
	b.WriteString(m.renderHeader(frame))
	b.WriteString("\n")
	b.WriteString(frame.Canvas.String())
	b.WriteString("\n")
	b.WriteString(m.renderStatus(frame))
	return b.String()
}

func (m Model) renderHeader(frame render.Frame) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	title := titleStyle.Render("Zodiac Sky")
	instant := dimStyle.Render(m.at.Format("2006-01-02 15:04 UTC"))
	sun := accentStyle.Render(fmt.Sprintf("Sun %.1f° %s", frame.Sun.EclipticLon, frame.Constellation))
	sign := dimStyle.Render(frame.TropicalSign)
	moon := accentStyle.Render(astro.PhaseName(frame.Moon.Phase))

	return fmt.Sprintf("%s | %s | %s | %s | %s", title, instant, sun, sign, moon)
}

func (m Model) renderStatus(frame render.Frame) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	obs := "no observer"
	if m.observer != nil {
		obs = fmt.Sprintf("%.2f°, %.2f°", m.observer.LatDeg, m.observer.LonDeg)
		if m.showHoriz {
			obs += fmt.Sprintf(" | sun alt %.1f°", frame.SunAltitude)
		} else {
			obs += " | horizon off"
		}
	}

	pan := ""
	if m.panOffset != 0 {
		pan = fmt.Sprintf(" | pan %+.0f°", m.panOffset)
	}

	help := "←/→ pan · h/l hour · j/k day · J/K month · n now · g horizon · q quit"
	return dimStyle.Render(obs+pan) + "\n" + dimStyle.Render(help)
}
