package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/ineido/cgol/config"
	"github.com/ineido/cgol/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "World seed (0 = use config, -1 = random)")
	maxGens := flag.Int("max-generations", 0, "Stop after N generations (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV stats and config snapshot")
	saveFile := flag.String("save-file", "", "Save file path (empty = use config)")
	load := flag.Bool("load", false, "Resume from the save file before stepping")
	unpaced := flag.Bool("unpaced", false, "Ignore the configured tick rate and run flat out")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *seed != 0 {
		cfg.Grid.Seed = *seed
	}

	opts := game.Options{
		MaxGenerations: *maxGens,
		OutputDir:      *outputDir,
		SaveFile:       *saveFile,
		LoadSave:       *load,
		Unpaced:        *unpaced,
	}

	g, err := game.New(cfg, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	w := g.World()
	slog.Info("starting simulation",
		"seed", w.Seed(),
		"width", w.Width(),
		"height", w.Height(),
		"toroidal", cfg.Grid.Toroidal,
		"fade", cfg.Fade.Enabled,
		"tick_rate", cfg.Run.TickRate,
	)

	reason, err := g.Run()
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
	slog.Info("simulation finished",
		"reason", reason,
		"generation", w.Generation(),
	)
}
