// Command scratchdemo renders a scratch card headlessly: it loads a card
// configuration from YAML, replays scripted strokes on it and saves the
// result as a PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/scratchcard"
)

func main() {
	var (
		config  = flag.String("config", "", "YAML card configuration (optional)")
		picture = flag.String("image", "", "picture under the cover (overrides the config)")
		output  = flag.String("output", "scratch.png", "output file")
		verbose = flag.Bool("v", false, "log card diagnostics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	scratchcard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	script := defaultScript()
	if *config != "" {
		data, err := os.ReadFile(*config)
		if err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
		if script, err = parseScript(data); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
	}
	if *picture != "" {
		script.Card[scratchcard.KeyImageSource] = *picture
	}

	out, result, err := run(script)
	if err != nil {
		log.Fatalf("Failed to run card: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Card saved to %s (%dx%d): scratched %.1f%%, completed %v\n",
		*output, out.Bounds().Dx(), out.Bounds().Dy(), result.Fraction*100, result.Completed)
}
