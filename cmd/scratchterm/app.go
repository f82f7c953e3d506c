package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/scratchcard"
	"github.com/gogpu/scratchcard/host"
	"github.com/gogpu/scratchcard/host/memhost"
	"github.com/gogpu/scratchcard/internal/prize"
	"github.com/gogpu/scratchcard/merge"
)

// Card size limits in pixels. A terminal cell shows two pixels stacked
// with a half block.
const (
	maxWidth  = 72
	maxHeight = 40
	minWidth  = 8
	minHeight = 4
)

// Player plays the scratch and completion sounds.
type Player interface {
	PlayScratch(segment float64)
	PlayChime()
}

// silent is the Player used when sound is off.
type silent struct{}

func (silent) PlayScratch(float64) {}
func (silent) PlayChime()          {}

// Settings configures the demo card.
type Settings struct {
	Image     string
	Threshold float64
	Brush     float64
	Logger    *slog.Logger
}

// App runs one scratch card inside a terminal screen.
type App struct {
	screen tcell.Screen
	player Player
	set    Settings

	doc    *memhost.Document
	box    *memhost.Element
	canvas *memhost.Canvas
	card   *scratchcard.Card

	origin  image.Point // card top-left cell
	pressed bool
	lastX   float64
	lastY   float64

	fraction  float64
	completed bool
	status    string
}

// NewApp builds the card sized to the screen. A nil player is silent.
func NewApp(screen tcell.Screen, player Player, set Settings) (*App, error) {
	if player == nil {
		player = silent{}
	}
	a := &App{screen: screen, player: player, set: set}
	if err := a.reset(); err != nil {
		return nil, err
	}
	return a, nil
}

// reset destroys the current card, if any, and deals a fresh one.
func (a *App) reset() error {
	if a.card != nil {
		a.card.Destroy()
	}
	a.canvas = nil
	a.pressed = false
	a.fraction = 0
	a.completed = false

	cols, rows := a.screen.Size()
	w := clamp(cols-2, minWidth, maxWidth)
	h := clamp((rows-3)*2, minHeight, maxHeight)
	a.layout(w, h)

	src := a.set.Image
	if src == "" {
		src = fmt.Sprintf("%s?%dx%d", prize.Source, w, h)
	}

	a.doc = memhost.NewDocument(memhost.WithLoader(prize.Load), memhost.WithLogger(a.set.Logger))
	a.box = a.doc.CreateElement("div")

	cfg := merge.Map{
		scratchcard.KeyHostElement:         a.box,
		scratchcard.KeyImageSource:         src,
		scratchcard.KeySize:                []int{w, h},
		scratchcard.KeyCompletionThreshold: a.set.Threshold,
		scratchcard.KeyCoverStyle: merge.Map{
			scratchcard.KeyLabelText:   "Scratch",
			scratchcard.KeyFont:        fmt.Sprintf("%dpx sans-serif", max(6, h/4)),
			scratchcard.KeyStrokeWidth: a.set.Brush,
		},
		scratchcard.KeyOnScratch: func(f float64) {
			a.fraction = f
		},
		scratchcard.KeyOnComplete: func() {
			a.completed = true
			a.player.PlayChime()
		},
	}

	var opts []scratchcard.Option
	if a.set.Logger != nil {
		opts = append(opts, scratchcard.WithLogger(a.set.Logger))
	}
	card, err := scratchcard.New(cfg, opts...)
	if err != nil {
		return err
	}
	a.card = card

	if a.doc.LoadImages() == 0 {
		card.Destroy()
		return fmt.Errorf("scratchterm: cannot load %s", src)
	}
	canvases := a.box.Query("canvas")
	if len(canvases) == 0 {
		return fmt.Errorf("scratchterm: card has no canvas")
	}
	a.canvas = canvases[0].(*memhost.Canvas)
	a.status = "Drag with the mouse to scratch. r: new card, q: quit"
	return nil
}

// layout centers a w x h pixel card on the screen.
func (a *App) layout(w, h int) {
	cols, rows := a.screen.Size()
	a.origin = image.Pt(max(0, (cols-w)/2), max(0, (rows-1-(h+1)/2)/2))
}

// Handle processes one terminal event. It returns false when the demo
// should exit.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			if err := a.reset(); err != nil {
				a.status = err.Error()
			}
		}

	case *tcell.EventMouse:
		a.mouse(ev)

	case *tcell.EventResize:
		w, h := a.card.Size()
		a.layout(w, h)
		a.screen.Sync()
	}
	return true
}

// mouse turns terminal mouse reports into pointer events on the canvas.
func (a *App) mouse(ev *tcell.EventMouse) {
	if a.canvas == nil {
		return
	}
	cx, cy := ev.Position()
	x, y := a.pixel(cx, cy)
	down := ev.Buttons()&tcell.Button1 != 0

	w, h := a.card.Size()
	inside := x >= 0 && y >= 0 && x < float64(w) && y < float64(h)

	switch {
	case down && !a.pressed:
		if !inside {
			return
		}
		a.pressed = true
		a.canvas.Dispatch(memhost.MouseEvent(host.MouseDown, x, y))
	case down && a.pressed:
		if !inside {
			a.pressed = false
			a.canvas.Dispatch(memhost.MouseEvent(host.MouseOut, x, y))
			return
		}
		if x == a.lastX && y == a.lastY {
			return
		}
		a.canvas.Dispatch(memhost.MouseEvent(host.MouseMove, x, y))
		a.player.PlayScratch(math.Hypot(x-a.lastX, y-a.lastY))
	case !down && a.pressed:
		a.pressed = false
		a.canvas.Dispatch(memhost.MouseEvent(host.MouseUp, x, y))
	}
	a.lastX, a.lastY = x, y
}

// pixel maps a cell to the page position of its pixel pair center.
func (a *App) pixel(cx, cy int) (x, y float64) {
	return float64(cx-a.origin.X) + 0.5, float64(cy-a.origin.Y)*2 + 1
}

// Draw renders the card and the status line.
func (a *App) Draw() {
	a.screen.Clear()

	pic := memhost.Render(a.box)
	b := pic.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := cellColor(pic.NRGBAAt(x, y))
			bottom := tcell.ColorDefault
			if y+1 < b.Max.Y {
				bottom = cellColor(pic.NRGBAAt(x, y+1))
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			a.screen.SetContent(a.origin.X+x, a.origin.Y+y/2, '▀', nil, style)
		}
	}

	_, rows := a.screen.Size()
	line := fmt.Sprintf("%s  [%s %3.0f%%]", a.status, a.card.State().Phase, a.fraction*100)
	if a.completed {
		line = "Revealed! r: new card, q: quit"
	}
	a.text(0, rows-1, line)
	a.screen.Show()
}

func (a *App) text(x, y int, s string) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// Close tears down the card.
func (a *App) Close() {
	if a.card != nil {
		a.card.Destroy()
	}
}

// cellColor converts a pixel, composited over black, to a terminal color.
// Fully transparent pixels keep the terminal background.
func cellColor(c color.NRGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	k := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*k/255, int32(c.G)*k/255, int32(c.B)*k/255)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
