// Package scratchcard implements a scratch card widget: a picture hidden
// under an opaque cover that the user rubs away with pointer drags.
//
// # Overview
//
// A Card attaches to a host element, loads the picture, stacks a canvas on
// top of it and paints the cover (a fill plus a centered label). Each drag
// segment is stroked with the destination-out composite, which erases the
// cover along the pointer path. When the pointer is released the card
// counts the fully transparent pixels of the valid area, reports the
// fraction through onScratch, and once the fraction reaches the completion
// threshold hides the canvas and calls onComplete, exactly once.
//
// # Quick Start
//
//	doc := memhost.NewDocument()
//	box := doc.CreateElement("div")
//
//	card, err := scratchcard.New(merge.Map{
//	    "hostElement":         box,
//	    "imageSource":         "prize.png",
//	    "size":                []int{300, 200},
//	    "completionThreshold": 0.6,
//	    "onComplete":          func() { fmt.Println("revealed") },
//	})
//	if err != nil {
//	    log.Fatal(err) // *scratchcard.ConfigError
//	}
//	defer card.Destroy()
//
// # Configuration
//
// The configuration is a tree (merge.Map) merged over Defaults with
// merge.Resolve, then checked by Validate. Nested maps such as coverStyle
// merge key by key; slices and funcs replace the default wholesale.
//
// # Hosts
//
// Cards only talk to the host through the interfaces in package host. The
// host/memhost package keeps everything in memory (tests, headless
// rendering, the terminal demo); host/dom drives a real browser page when
// built for js/wasm.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Card, Config, Defaults, Validate, ErasedFraction
//   - merge: configuration tree resolution
//   - host: element, image, canvas and event contracts
//   - surface: the 2D drawing surface and its gg-backed implementation
//
// # Logging
//
// Cards log through log/slog. See SetLogger and WithLogger.
package scratchcard
