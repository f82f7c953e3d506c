//go:build js && wasm

// Command scratchwasm exposes scratch cards to JavaScript. It installs a
// global ScratchCard(options) constructor and then blocks forever.
//
// hostElement may be a node or a CSS selector.
//
//	const card = ScratchCard({
//	  hostElement: "#card",
//	  imageSource: "prize.png",
//	  onComplete: () => console.log("revealed"),
//	});
//	card.destroy();
package main

import (
	"log/slog"
	"strings"
	"syscall/js"

	"github.com/gogpu/scratchcard"
	"github.com/gogpu/scratchcard/host/dom"
	"github.com/gogpu/scratchcard/merge"
)

func main() {
	scratchcard.SetLogger(slog.Default())
	js.Global().Set("ScratchCard", js.FuncOf(newCard))
	select {}
}

// newCard builds a card from a JavaScript options object. It returns an
// object with destroy, state and scratchedFraction methods, or
// {error: message} when the options are invalid.
func newCard(_ js.Value, args []js.Value) any {
	if len(args) == 0 {
		return map[string]any{"error": "ScratchCard: missing options"}
	}
	cfg := dom.ToMap(args[0])
	if cfg == nil {
		return map[string]any{"error": "ScratchCard: options must be an object"}
	}
	if sel, ok := cfg[scratchcard.KeyHostElement].(string); ok {
		el, err := dom.Mount(sel)
		if err != nil {
			return map[string]any{"error": err.Error()}
		}
		cfg[scratchcard.KeyHostElement] = el
	}
	bindCallbacks(cfg)

	card, err := scratchcard.New(cfg, scratchcard.WithCapabilities(detect()))
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	var funcs []js.Func
	method := func(fn func() any) js.Func {
		f := js.FuncOf(func(js.Value, []js.Value) any { return fn() })
		funcs = append(funcs, f)
		return f
	}
	return map[string]any{
		"destroy": method(func() any {
			card.Destroy()
			for _, f := range funcs {
				f.Release()
			}
			return nil
		}),
		"state": method(func() any {
			return card.State().Phase.String()
		}),
		"scratchedFraction": method(func() any {
			return card.ScratchedFraction()
		}),
	}
}

// bindCallbacks replaces JavaScript callback functions with Go funcs of
// the types the card expects.
func bindCallbacks(cfg merge.Map) {
	if fn, ok := cfg[scratchcard.KeyOnScratch].(js.Value); ok {
		cfg[scratchcard.KeyOnScratch] = func(f float64) { fn.Invoke(f) }
	}
	if fn, ok := cfg[scratchcard.KeyOnComplete].(js.Value); ok {
		cfg[scratchcard.KeyOnComplete] = func() { fn.Invoke() }
	}
}

// detect reports the input capabilities of the browser.
func detect() scratchcard.Capabilities {
	win := js.Global()
	ua := win.Get("navigator").Get("userAgent").String()
	return scratchcard.Capabilities{
		Touch:        win.Get("ontouchstart").Type() != js.TypeUndefined,
		ForceRepaint: strings.Contains(ua, "Android"),
	}
}
