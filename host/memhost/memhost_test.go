// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package memhost

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/scratchcard/host"
	"github.com/gogpu/scratchcard/surface"
)

func solid(w, h int, c color.Color) Loader {
	return func(string) (image.Image, error) {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := range h {
			for x := range w {
				img.Set(x, y, c)
			}
		}
		return img, nil
	}
}

func TestElementTree(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	a := doc.CreateElement("span")
	b := doc.NewCanvas()

	if err := root.AppendChild(a); err != nil {
		t.Fatal(err)
	}
	if err := root.AppendChild(b); err != nil {
		t.Fatal(err)
	}
	if got := len(root.Children()); got != 2 {
		t.Fatalf("children = %d, want 2", got)
	}
	if root.Children()[1] != host.Element(b) {
		t.Error("Children() should return the canvas value itself")
	}
	if b.Parent() != host.Element(root) {
		t.Error("Parent() mismatch")
	}

	// Moving a node detaches it from its previous parent.
	if err := a.AppendChild(b); err != nil {
		t.Fatal(err)
	}
	if len(root.Children()) != 1 {
		t.Errorf("root children = %d after move, want 1", len(root.Children()))
	}
	if got := root.Query("canvas"); len(got) != 1 || got[0] != host.Element(b) {
		t.Errorf("Query(canvas) = %v", got)
	}

	if err := b.AppendChild(root); !errors.Is(err, ErrHierarchy) {
		t.Errorf("cycle insert err = %v, want ErrHierarchy", err)
	}
	if err := root.RemoveChild(b); !errors.Is(err, ErrNotChild) {
		t.Errorf("RemoveChild(grandchild) err = %v, want ErrNotChild", err)
	}
	if err := a.RemoveChild(b); err != nil {
		t.Errorf("RemoveChild() = %v", err)
	}

	root.SetText("hello")
	root.ClearChildren()
	if len(root.Children()) != 0 || root.Text() != "" {
		t.Error("ClearChildren left content")
	}
}

type foreign struct{ host.Element }

func TestAppendForeignNode(t *testing.T) {
	root := NewDocument().CreateElement("div")
	if err := root.AppendChild(foreign{}); !errors.Is(err, ErrForeignNode) {
		t.Errorf("err = %v, want ErrForeignNode", err)
	}
}

func TestStyles(t *testing.T) {
	e := NewDocument().CreateElement("div")
	e.SetCSSText("display: inline-block; Position: relative;; bogus")
	if got := e.Style("display"); got != "inline-block" {
		t.Errorf("display = %q", got)
	}
	if got := e.Style("position"); got != "relative" {
		t.Errorf("position = %q", got)
	}
	e.SetStyle("width", "100px")
	if got := e.CSSText(); got != "display: inline-block; position: relative; width: 100px;" {
		t.Errorf("CSSText() = %q", got)
	}
	e.SetStyle("display", "")
	if got := e.Style("display"); got != "" {
		t.Errorf("display after removal = %q", got)
	}
	if got := e.CSSText(); got != "position: relative; width: 100px;" {
		t.Errorf("CSSText() = %q", got)
	}
}

func TestPageOffset(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("body")
	box := doc.CreateElement("div")
	canvas := doc.NewCanvas()
	root.SetOffset(5, 5)
	box.SetOffset(10, 20)
	_ = root.AppendChild(box)
	_ = box.AppendChild(canvas)

	x, y := canvas.PageOffset()
	if x != 15 || y != 25 {
		t.Errorf("PageOffset() = (%v, %v), want (15, 25)", x, y)
	}
}

func TestListenDispatchBubbles(t *testing.T) {
	doc := NewDocument()
	box := doc.CreateElement("div")
	canvas := doc.NewCanvas()
	_ = box.AppendChild(canvas)

	var order []string
	sub := canvas.Listen(host.MouseMove, func(*host.Event) { order = append(order, "canvas") })
	box.Listen(host.MouseMove, func(ev *host.Event) {
		order = append(order, "box")
		ev.PreventDefault()
	})

	if !canvas.Dispatch(MouseEvent(host.MouseMove, 1, 1)) {
		t.Error("Dispatch should report the prevented default")
	}
	if len(order) != 2 || order[0] != "canvas" || order[1] != "box" {
		t.Errorf("delivery order = %v, want [canvas box]", order)
	}

	sub.Release()
	sub.Release()
	if canvas.Listeners(host.MouseMove) != 0 {
		t.Error("listener not removed after Release")
	}
	order = nil
	canvas.Dispatch(MouseEvent(host.MouseMove, 1, 1))
	if len(order) != 1 {
		t.Errorf("delivery after release = %v, want [box]", order)
	}
}

func TestImageLoad(t *testing.T) {
	doc := NewDocument(WithLoader(solid(30, 20, color.White)))
	img := doc.NewImage()

	fired := 0
	img.OnLoad(func() { fired++ })
	img.SetSource("card.png")
	if doc.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", doc.Pending())
	}
	if w, h := img.NaturalSize(); w != 0 || h != 0 {
		t.Errorf("NaturalSize before load = %dx%d", w, h)
	}

	if n := doc.LoadImages(); n != 1 {
		t.Errorf("LoadImages() = %d, want 1", n)
	}
	if fired != 1 {
		t.Errorf("onload fired %d times, want 1", fired)
	}
	if w, h := img.NaturalSize(); w != 30 || h != 20 {
		t.Errorf("NaturalSize = %dx%d, want 30x20", w, h)
	}
	if doc.LoadImages() != 0 {
		t.Error("second LoadImages should have nothing to do")
	}
}

func TestImageLoadUnsetCallback(t *testing.T) {
	doc := NewDocument(WithLoader(solid(4, 4, color.White)))
	img := doc.NewImage()
	img.OnLoad(func() { t.Error("unset callback fired") })
	img.SetSource("x.png")
	img.OnLoad(nil)
	doc.LoadImages()
	if !img.Loaded() {
		t.Error("image should still load")
	}
}

func TestImageLoadFailure(t *testing.T) {
	doc := NewDocument(WithLoader(func(string) (image.Image, error) {
		return nil, errors.New("boom")
	}))
	img := doc.NewImage()
	img.OnLoad(func() { t.Error("failed load fired the callback") })
	img.SetSource("missing.png")
	if n := doc.LoadImages(); n != 0 {
		t.Errorf("LoadImages() = %d, want 0", n)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 7, 3))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	pic, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	if b := pic.Bounds(); b.Dx() != 7 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 7x3", b)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "none.png")); err == nil {
		t.Error("LoadFile on a missing file should fail")
	}
}

func TestCanvasContext2D(t *testing.T) {
	doc := NewDocument()
	c := doc.NewCanvas()
	c.SetSize(40, 30)

	s, err := c.Context2D()
	if err != nil {
		t.Fatalf("Context2D() = %v", err)
	}
	if s.Width() != 40 || s.Height() != 30 {
		t.Errorf("surface = %dx%d, want 40x30", s.Width(), s.Height())
	}
	again, _ := c.Context2D()
	if again != s {
		t.Error("Context2D should return the same surface")
	}

	c.SetSize(10, 10)
	if c.Surface() != nil {
		t.Error("resize should discard the surface")
	}
}

func TestCanvasContext2DUnsupported(t *testing.T) {
	doc := NewDocument(WithBackend("no-such-backend"))
	c := doc.NewCanvas()
	_, err := c.Context2D()
	var nf *surface.BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Context2D() err = %v, want BackendNotFoundError", err)
	}
}

func TestRender(t *testing.T) {
	doc := NewDocument(WithLoader(solid(10, 10, color.NRGBA{0, 0, 255, 255})))
	box := doc.CreateElement("div")
	box.SetCSSText("width: 20px; height: 20px;")

	img := doc.NewImage()
	img.SetSource("blue.png")
	doc.LoadImages()
	img.SetSize(20, 20)
	img.SetStyle("z-index", "1")
	_ = box.AppendChild(img)

	canvas := doc.NewCanvas()
	canvas.SetSize(20, 20)
	canvas.SetStyle("z-index", "2")
	_ = box.AppendChild(canvas)
	s, _ := canvas.Context2D()
	s.SetFillColor(color.NRGBA{255, 0, 0, 255})
	s.FillRect(0, 0, 20, 10)

	out := Render(box)
	if got := out.NRGBAAt(5, 5); got.R != 255 || got.B != 0 {
		t.Errorf("covered pixel = %v, want red", got)
	}
	if got := out.NRGBAAt(5, 15); got.B < 250 || got.R > 5 {
		t.Errorf("uncovered pixel = %v, want blue", got)
	}

	canvas.SetStyle("display", "none")
	out = Render(box)
	if got := out.NRGBAAt(5, 5); got.B < 250 {
		t.Errorf("hidden canvas pixel = %v, want blue", got)
	}
	if Alpha(out, 50, 50) != 0 {
		t.Error("Alpha outside bounds should be 0")
	}
}

func TestEventHelpers(t *testing.T) {
	ev := TouchEvent(host.TouchMove, 3, 4)
	if x, y := ev.Point(); x != 3 || y != 4 {
		t.Errorf("touch point = (%v, %v)", x, y)
	}
	if ev := TouchEvent(host.TouchEnd, 3, 4); len(ev.Touches) != 0 {
		t.Error("touchend should carry no target touches")
	}

	c := NewDocument().NewCanvas()
	var got []host.EventType
	for _, et := range []host.EventType{host.TouchStart, host.TouchMove, host.TouchEnd} {
		c.Listen(et, func(ev *host.Event) { got = append(got, ev.Type) })
	}
	Drag(c.Element, true, [2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2})
	want := []host.EventType{host.TouchStart, host.TouchMove, host.TouchMove, host.TouchEnd}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}
