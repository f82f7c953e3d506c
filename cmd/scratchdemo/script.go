package main

import (
	"errors"
	"fmt"
	"image"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/scratchcard"
	"github.com/gogpu/scratchcard/host/memhost"
	"github.com/gogpu/scratchcard/internal/prize"
	"github.com/gogpu/scratchcard/merge"
)

// Script is a demo run: the card configuration and the strokes to replay.
//
// Example YAML:
//
//	card:
//	  imageSource: prize.png
//	  size: [300, 200]
//	  completionThreshold: 0.5
//	  coverStyle:
//	    labelText: Scratch me
//	    strokeWidth: 40
//	touch: false
//	strokes:
//	  - [[20, 60], [280, 60]]
//	  - [[20, 140], [280, 140]]
type Script struct {
	Card    merge.Map      `yaml:"card"`
	Touch   bool           `yaml:"touch"`
	Strokes [][][2]float64 `yaml:"strokes"`
}

// Result summarizes a run.
type Result struct {
	Fraction  float64
	Samples   []float64
	Completed bool
}

// errNoStrokes is returned for a script without strokes.
var errNoStrokes = errors.New("scratchdemo: script has no strokes")

func parseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("scratchdemo: parse script: %w", err)
	}
	if s.Card == nil {
		s.Card = merge.Map{}
	}
	if len(s.Strokes) == 0 {
		return Script{}, errNoStrokes
	}
	return s, nil
}

// defaultScript scratches three bands across the built-in prize picture.
func defaultScript() Script {
	return Script{
		Card: merge.Map{
			scratchcard.KeyImageSource:         prize.Source,
			scratchcard.KeySize:                []int{scratchcard.DefaultWidth, scratchcard.DefaultHeight},
			scratchcard.KeyCompletionThreshold: 0.5,
		},
		Strokes: [][][2]float64{
			{{10, 40}, {120, 60}, {230, 40}},
			{{10, 90}, {120, 110}, {230, 90}},
			{{10, 140}, {120, 160}, {230, 140}},
		},
	}
}

// run builds the card on an in-memory host, replays the strokes and
// renders the host tree.
func run(s Script) (*image.NRGBA, Result, error) {
	var res Result

	doc := memhost.NewDocument(memhost.WithLoader(prize.Load))
	box := doc.CreateElement("div")

	cfg := merge.Clone(s.Card).(merge.Map)
	cfg[scratchcard.KeyHostElement] = box
	cfg[scratchcard.KeyOnScratch] = func(f float64) {
		res.Samples = append(res.Samples, f)
	}
	cfg[scratchcard.KeyOnComplete] = func() {
		res.Completed = true
	}

	card, err := scratchcard.New(cfg, scratchcard.WithCapabilities(scratchcard.Capabilities{Touch: s.Touch}))
	if err != nil {
		return nil, res, err
	}
	defer card.Destroy()

	if doc.LoadImages() == 0 {
		return nil, res, fmt.Errorf("scratchdemo: image %v did not load", s.Card[scratchcard.KeyImageSource])
	}
	if err := card.Err(); err != nil {
		return nil, res, err
	}

	canvas := box.Query("canvas")[0].(*memhost.Canvas)
	for _, stroke := range s.Strokes {
		memhost.Drag(canvas.Element, s.Touch, stroke...)
	}

	res.Fraction = card.ScratchedFraction()
	return memhost.Render(box), res, nil
}
