// Command ls-zodiac renders a live sky map of the Sun, Moon, planets, and
// zodiacal constellations in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-zodiac/internal/astro"
	"github.com/litescript/ls-zodiac/internal/catalog"
	"github.com/litescript/ls-zodiac/internal/logging"
	"github.com/litescript/ls-zodiac/internal/render"
	"github.com/litescript/ls-zodiac/internal/ui"
	"github.com/litescript/ls-zodiac/internal/version"
)

const (
	defaultFrameWidth  = 100
	defaultFrameHeight = 40
)

func main() {
	atFlag := flag.String("at", "", "UTC instant to render (RFC 3339, default now)")
	latFlag := flag.Float64("lat", 91, "Observer latitude in degrees (enables horizon layer)")
	lonFlag := flag.Float64("lon", 0, "Observer longitude in degrees, east positive")
	frameMode := flag.Bool("frame", false, "Print a single rendered frame instead of the TUI")
	width := flag.Int("width", defaultFrameWidth, "Frame width in cells (frame mode)")
	height := flag.Int("height", defaultFrameHeight, "Frame height in cells (frame mode)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("ls-zodiac " + version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	at := time.Now().UTC()
	if *atFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -at value %q: %v\n", *atFlag, err)
			os.Exit(1)
		}
		at = parsed.UTC()
	}

	// Latitude 91 is the unset sentinel; the horizon layer needs a real
	// observer.
	var observer *astro.Observer
	if *latFlag >= -90 && *latFlag <= 90 {
		observer = &astro.Observer{LatDeg: *latFlag, LonDeg: *lonFlag}
	}

	scene := render.Scene{
		Stars:          catalog.Stars(),
		Constellations: catalog.Constellations(),
	}
	logger.Debug("Catalogs loaded: %d stars, %d constellations",
		len(scene.Stars), len(scene.Constellations))

	if *frameMode {
		runFrame(scene, at, observer, *width, *height)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Stdout is not a terminal; use -frame for one-shot output")
		os.Exit(1)
	}

	model := ui.New(scene, at, observer)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runFrame renders one frame to stdout and exits.
func runFrame(scene render.Scene, at time.Time, observer *astro.Observer, width, height int) {
	frame := scene.Render(render.Params{
		Time:     at,
		Observer: observer,
		Width:    width,
		Height:   height,
	})

	fmt.Printf("%s | Sun %.1f° %s | %s | %s\n",
		at.Format("2006-01-02 15:04 UTC"),
		frame.Sun.EclipticLon,
		frame.Constellation,
		frame.TropicalSign,
		astro.PhaseName(frame.Moon.Phase),
	)
	fmt.Println(frame.Canvas.String())
}
