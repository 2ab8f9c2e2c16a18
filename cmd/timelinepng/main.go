// Command timelinepng renders a timeline data file to a PNG without a
// display, exercising the full load/layout/draw path.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"time"

	"timelane/internal/config"
	"timelane/internal/loader"
	"timelane/ui/chart"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	dataPath := flag.String("data", "", "CSV data file (required)")
	configPath := flag.String("config", "", "YAML chart configuration file")
	outPath := flag.String("o", "timeline.png", "output PNG path")
	width := flag.Int("width", 1600, "output width in pixels")
	height := flag.Int("height", 900, "output height in pixels")
	at := flag.String("at", "", "render as of this RFC 3339 instant instead of now")
	flag.Parse()

	if *dataPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	items, err := loader.Load(*dataPath)
	if err != nil {
		log.Fatalf("load: %v", err)
	}

	ch, err := chart.New(cfg)
	if err != nil {
		log.Fatalf("chart: %v", err)
	}
	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			log.Fatalf("bad -at instant: %v", err)
		}
		ch.SetNow(func() time.Time { return t })
	}
	if err := ch.Bind(items); err != nil {
		log.Fatalf("bind: %v", err)
	}

	img := ch.Snapshot(*width, *height)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode: %v", err)
	}
	log.Printf("Wrote %dx%d chart with %d items to %s", *width, *height, len(items), *outPath)
}
