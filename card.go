package scratchcard

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strconv"

	"github.com/gogpu/scratchcard/host"
	"github.com/gogpu/scratchcard/merge"
	"github.com/gogpu/scratchcard/surface"
)

// Inline styles applied to the card's nodes.
const (
	containerCSS = "display: inline-block; position: relative; background: transparent;"
	imageCSS     = "position: relative; z-index: 1; vertical-align: middle;"
	canvasCSS    = "position: absolute; z-index: 2; top: 0; left: 0;"
)

// Card is a scratch card attached to a host element.
//
// A Card is driven by host events delivered one at a time and is not safe
// for concurrent use.
type Card struct {
	cfg  Config
	caps Capabilities
	log  *slog.Logger

	container host.Element
	img       host.Image
	canvas    host.Canvas
	surf      surface.Surface

	state    State
	width    int
	height   int
	fraction float64
	subs     []*host.Subscription
	err      error
}

// New resolves config over Defaults, validates it and starts loading the
// card image. A configuration error is returned as a *ConfigError and
// nothing is created.
//
// The card becomes interactive once the host reports the image loaded.
func New(config merge.Map, opts ...Option) (*Card, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	resolved := merge.Resolve(config, Defaults())
	if err := Validate(resolved); err != nil {
		return nil, err
	}

	log := o.logger.With("instance", nextInstance())
	c := &Card{
		cfg:  decodeConfig(resolved, log),
		caps: o.caps,
		log:  log,
	}
	c.container = c.cfg.HostElement
	c.start()
	return c, nil
}

// start creates the image and waits for it to load.
func (c *Card) start() {
	doc := c.container.OwnerDocument()
	c.img = doc.CreateImage()
	c.img.OnLoad(c.handleLoad)
	c.state.Phase = PhaseImageLoading
	c.log.Debug("scratchcard: loading image", "src", c.cfg.ImageSource)
	c.img.SetSource(c.cfg.ImageSource)
}

// handleLoad builds the layout and the cover once the image is available.
func (c *Card) handleLoad() {
	if c.state.Phase != PhaseImageLoading {
		return
	}

	w, h := c.cfg.Size.X, c.cfg.Size.Y
	if c.cfg.Size == (image.Point{}) {
		w, h = c.img.NaturalSize()
	}
	if w <= 0 || h <= 0 {
		c.log.Warn("scratchcard: image has no size", "width", w, "height", h)
	}
	c.width, c.height = w, h

	c.container.ClearChildren()
	c.container.SetCSSText(containerCSS)
	c.container.SetStyle("width", px(w))
	c.container.SetStyle("height", px(h))

	c.img.SetSize(w, h)
	c.img.SetCSSText(imageCSS)
	if err := c.container.AppendChild(c.img); err != nil {
		c.log.Warn("scratchcard: cannot insert image", "err", err)
	}

	c.canvas = c.container.OwnerDocument().CreateCanvas()
	c.canvas.SetFallbackText(c.cfg.UnsupportedMessage)
	c.canvas.SetCSSText(canvasCSS)
	c.canvas.SetSize(w, h)
	if err := c.container.AppendChild(c.canvas); err != nil {
		c.log.Warn("scratchcard: cannot insert canvas", "err", err)
	}

	surf, err := c.canvas.Context2D()
	if err != nil || surf == nil {
		c.unsupported(err)
		return
	}
	c.surf = surf
	c.paintCover()
	c.bind()
	c.state.Phase = PhaseReady
	c.log.Info("scratchcard: ready", "width", w, "height", h, "area", c.area())
}

// unsupported applies the static fallback look and stops.
func (c *Card) unsupported(cause error) {
	c.canvas.SetStyle("background", c.cfg.CoverStyle.FillColor)
	c.canvas.SetStyle("color", c.cfg.CoverStyle.LabelColor)
	if cause != nil {
		c.err = fmt.Errorf("%w: %s: %w", ErrUnsupportedSurface, c.cfg.UnsupportedMessage, cause)
	} else {
		c.err = fmt.Errorf("%w: %s", ErrUnsupportedSurface, c.cfg.UnsupportedMessage)
	}
	c.state.Phase = PhaseUnsupported
	c.log.Warn("scratchcard: falling back to static cover", "err", c.err)
}

// paintCover fills the surface, draws the label and prepares the erase
// stroke style.
func (c *Card) paintCover() {
	s := c.surf
	style := c.cfg.CoverStyle
	w, h := float64(c.width), float64(c.height)

	s.SetComposite(surface.CompositeSourceOver)
	s.SetFillColor(c.color(style.FillColor))
	s.FillRect(0, 0, w, h)

	font, err := surface.ParseFont(style.Font)
	if err != nil {
		c.log.Warn("scratchcard: invalid label font", "font", style.Font, "err", err)
		font = surface.DefaultFont
	}
	s.SetFont(font)
	s.SetTextBaseline(surface.TextBaselineMiddle)
	s.SetTextAlign(surface.TextAlignCenter)
	s.SetFillColor(c.color(style.LabelColor))
	s.FillText(style.LabelText, w/2, h/2)

	s.SetStrokeColor(color.White)
	s.SetLineJoin(surface.LineJoinRound)
	s.SetLineCap(surface.LineCapRound)
	s.SetLineWidth(style.StrokeWidth)
}

func (c *Card) color(css string) color.Color {
	col, err := surface.ParseColor(css)
	if err != nil {
		c.log.Warn("scratchcard: invalid color", "color", css, "err", err)
		return color.Black
	}
	return col
}

// bind registers the gesture listeners and keeps their subscriptions.
func (c *Card) bind() {
	c.subs = append(c.subs,
		c.canvas.Listen(c.caps.DownEvent(), c.onDown),
		c.canvas.Listen(c.caps.MoveEvent(), c.onMove),
		c.canvas.Listen(c.caps.UpEvent(), c.onUp),
		c.canvas.Listen(host.MouseOut, c.onLeave),
		c.container.Listen(c.caps.MoveEvent(), preventDefault),
	)
}

func preventDefault(ev *host.Event) {
	ev.PreventDefault()
}

// local converts an event to surface coordinates, measuring the canvas
// offset on first use.
func (c *Card) local(ev *host.Event) (x, y float64) {
	if !c.state.OffsetKnown {
		c.state.OffsetX, c.state.OffsetY = c.canvas.PageOffset()
		c.state.OffsetKnown = true
	}
	ex, ey := ev.Point()
	return ex - c.state.OffsetX, ey - c.state.OffsetY
}

func (c *Card) onDown(ev *host.Event) {
	if c.state.Phase != PhaseReady {
		return
	}
	x, y := c.local(ev)
	c.state.LastX, c.state.LastY = x, y
	c.state.Phase = PhaseStroking

	c.surf.BeginPath()
	c.surf.MoveTo(x, y)
}

// onMove erases the segment from the last stroke point to the event.
func (c *Card) onMove(ev *host.Event) {
	if c.state.Phase != PhaseStroking {
		return
	}
	x, y := c.local(ev)

	s := c.surf
	s.SetComposite(surface.CompositeDestinationOut)
	s.BeginPath()
	s.MoveTo(c.state.LastX, c.state.LastY)
	s.LineTo(x, y)
	s.Stroke()
	c.log.Debug("scratchcard: erase", "from", [2]float64{c.state.LastX, c.state.LastY}, "to", [2]float64{x, y})
	c.state.LastX, c.state.LastY = x, y

	if c.caps.ForceRepaint {
		if c.canvas.Style("opacity") != "" {
			c.canvas.SetStyle("opacity", "")
		} else {
			c.canvas.SetStyle("opacity", "0.999")
		}
	}
}

// onUp ends the stroke, reports coverage and checks completion. It samples
// even when the stroke already ended through onLeave.
func (c *Card) onUp(*host.Event) {
	if c.state.Phase != PhaseReady && c.state.Phase != PhaseStroking {
		return
	}
	c.state.Phase = PhaseReady
	c.surf.ClosePath()

	fraction := ErasedFraction(c.surf, c.area())
	c.fraction = fraction
	c.log.Debug("scratchcard: sampled", "fraction", fraction, "threshold", c.cfg.CompletionThreshold)

	if c.cfg.OnScratch != nil {
		c.cfg.OnScratch(fraction)
		if c.state.Phase != PhaseReady {
			// The callback destroyed the card.
			return
		}
	}
	if fraction >= c.cfg.CompletionThreshold {
		c.complete()
	}
}

func (c *Card) onLeave(*host.Event) {
	if c.state.Phase == PhaseStroking {
		c.state.Phase = PhaseReady
	}
}

// complete hides the cover and fires onComplete. It runs at most once.
func (c *Card) complete() {
	c.canvas.SetStyle("display", "none")
	c.state.Phase = PhaseCompleted
	c.log.Info("scratchcard: completed", "fraction", c.fraction)
	if c.cfg.OnComplete != nil {
		c.cfg.OnComplete()
	}
}

// area returns the sampled rectangle.
func (c *Card) area() image.Rectangle {
	if c.cfg.FullArea {
		return image.Rect(0, 0, c.width, c.height)
	}
	return c.cfg.ValidArea
}

// Destroy detaches the card: it unsets the load callback, releases every
// listener, removes the image and canvas from the container and drops its
// references. It is valid in any phase and safe to call more than once.
func (c *Card) Destroy() {
	if c.state.Phase == PhaseDestroyed {
		c.log.Debug("scratchcard: already destroyed")
		return
	}

	if c.img != nil {
		c.img.OnLoad(nil)
	}
	for _, sub := range c.subs {
		sub.Release()
	}
	c.subs = nil

	if c.container != nil {
		if c.canvas != nil {
			if err := c.container.RemoveChild(c.canvas); err != nil {
				c.log.Warn("scratchcard: cannot remove canvas", "err", err)
			}
		}
		if c.img != nil && c.state.Phase != PhaseImageLoading {
			if err := c.container.RemoveChild(c.img); err != nil {
				c.log.Warn("scratchcard: cannot remove image", "err", err)
			}
		}
	}
	if closer, ok := c.surf.(surface.Closer); ok {
		if err := closer.Close(); err != nil {
			c.log.Warn("scratchcard: closing surface", "err", err)
		}
	}

	c.surf = nil
	c.canvas = nil
	c.img = nil
	c.container = nil
	c.state = State{Phase: PhaseDestroyed}
	c.log.Info("scratchcard: destroyed")
}

// State returns a copy of the session state.
func (c *Card) State() State {
	return c.state
}

// Err returns the error that stopped the card, wrapping
// ErrUnsupportedSurface when the host had no drawing surface.
func (c *Card) Err() error {
	return c.err
}

// Config returns the decoded configuration.
func (c *Card) Config() Config {
	return c.cfg
}

// Size returns the card size in pixels, known once the image has loaded.
func (c *Card) Size() (width, height int) {
	return c.width, c.height
}

// Surface returns the drawing surface, or nil before the image loads and
// after Destroy.
func (c *Card) Surface() surface.Surface {
	return c.surf
}

// ScratchedFraction returns the current erased fraction of the sampled
// area. Without a surface it returns the last sampled value.
func (c *Card) ScratchedFraction() float64 {
	if c.surf == nil {
		return c.fraction
	}
	return ErasedFraction(c.surf, c.area())
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}
