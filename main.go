// Package main provides the entry point for the Timelane chart application.
package main

import (
	"flag"
	"log"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"timelane/internal/app"
	"timelane/internal/config"
	"timelane/internal/loader"
	"timelane/internal/version"
	"timelane/ui/chart"
	"timelane/ui/prefs"
)

const appTitle = "Timelane"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s (%s, built %s)",
		appTitle, version.Version, version.GitCommit, version.BuildTime)

	configPath := flag.String("config", "", "path to a YAML chart configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appPrefs := prefs.Load()
	if s := appPrefs.String(prefs.KeyStrategy); s != "" {
		cfg.Domain.Strategy = config.DomainStrategy(s)
		if err := cfg.Validate(); err != nil {
			log.Fatalf("preferences: %v", err)
		}
	}

	dataPath := appPrefs.String(prefs.KeyLastDataFile)
	if flag.NArg() > 0 {
		dataPath = flag.Arg(0)
	}
	if dataPath == "" {
		log.Fatal("no data file: pass a CSV path as the first argument")
	}

	items, err := loader.Load(dataPath)
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	log.Printf("Loaded %d items from %s", len(items), dataPath)

	a := fyneapp.New()
	a.Settings().SetTheme(&app.Theme{})
	win := a.NewWindow(appTitle)

	ch, err := chart.New(cfg)
	if err != nil {
		log.Fatalf("chart: %v", err)
	}
	if err := ch.Bind(items); err != nil {
		log.Fatalf("bind: %v", err)
	}
	stopClock := ch.StartClock(30 * time.Second)

	// Editing the data file in place reloads it into the running chart.
	watcher := app.NewFileWatcher(dataPath, 2*time.Second)
	if watcher != nil {
		watcher.OnChange(func() {
			reloaded, err := loader.Load(watcher.Path())
			if err != nil {
				log.Printf("reload: %v", err)
				return
			}
			if err := ch.Bind(reloaded); err != nil {
				log.Printf("rebind: %v", err)
				return
			}
			log.Printf("Reloaded %d items from %s", len(reloaded), watcher.Path())
		})
		watcher.Start()
	}

	win.SetContent(ch)
	win.Resize(fyne.NewSize(
		float32(appPrefs.FloatWithFallback(prefs.KeyWindowWidth, float64(cfg.Chart.Width))),
		float32(appPrefs.FloatWithFallback(prefs.KeyWindowHeight, float64(cfg.Chart.Height))),
	))

	win.SetCloseIntercept(func() {
		stopClock()
		if watcher != nil {
			watcher.Stop()
		}
		size := win.Canvas().Size()
		appPrefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
		appPrefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
		appPrefs.SetString(prefs.KeyLastDataFile, dataPath)
		if err := appPrefs.Save(); err != nil {
			log.Printf("saving preferences: %v", err)
		}
		win.Close()
	})

	win.ShowAndRun()
}
