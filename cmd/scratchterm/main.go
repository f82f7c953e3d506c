// Command scratchterm plays a scratch card in the terminal. The card is
// drawn with half blocks and scratched with the mouse.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/scratchcard/internal/sound"
)

func main() {
	var (
		picture   = flag.String("image", "", "picture under the cover (default: built-in prize)")
		threshold = flag.Float64("threshold", 0.6, "scratched fraction that reveals the card")
		brush     = flag.Float64("brush", 4, "brush width in pixels")
		volume    = flag.Float64("volume", 0.5, "sound volume in [0, 1]")
		mute      = flag.Bool("mute", false, "disable sound")
		logFile   = flag.String("log", "", "write diagnostics to this file")
	)
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseDragEvents)

	var player Player
	if !*mute {
		p := sound.NewPlayer(*volume)
		if err := p.Init(); err != nil {
			// Non-fatal, the card works without sound
			logger.Warn("audio initialization failed", "err", err)
		} else {
			defer p.Close()
			player = p
		}
	}

	app, err := NewApp(screen, player, Settings{
		Image:     *picture,
		Threshold: *threshold,
		Brush:     *brush,
		Logger:    logger,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	defer app.Close()

	run(screen, app)
}

// run pumps terminal events into app and redraws at about 30 frames per
// second.
func run(screen tcell.Screen, app *App) {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	app.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !app.Handle(ev) {
				return
			}
		case <-ticker.C:
			app.Draw()
		}
	}
}
