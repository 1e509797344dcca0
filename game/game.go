// Package game is the driver loop around the engine: it paces
// generations, watches for stasis, feeds telemetry, and wires save files.
// The engine itself never sleeps or does I/O; all of that lives here.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ineido/cgol/codec"
	"github.com/ineido/cgol/config"
	"github.com/ineido/cgol/telemetry"
	"github.com/ineido/cgol/world"
)

// StopReason tells why Run returned.
type StopReason string

const (
	StopMaxGenerations StopReason = "max_generations"
	StopStalemate      StopReason = "stalemate"
	StopOscillators    StopReason = "oscillators"
)

// Options holds run overrides layered on top of the loaded config.
type Options struct {
	MaxGenerations int    // 0 = use config
	OutputDir      string // "" = use config
	SaveFile       string // "" = use config
	LoadSave       bool   // resume from the save file before stepping
	Unpaced        bool   // ignore the configured tick rate
}

// Game owns one world and its run state.
type Game struct {
	cfg  *config.Config
	opts Options

	world     *world.World
	collector *telemetry.Collector
	output    *telemetry.OutputManager
}

// New builds a game from the loaded configuration: constructs the world,
// applies the initial populate mode or resumes from a save file, and sets
// up telemetry output.
func New(cfg *config.Config, opts Options) (*Game, error) {
	w, err := world.New(cfg.World())
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}

	saveFile := cfg.Run.SaveFile
	if opts.SaveFile != "" {
		saveFile = opts.SaveFile
	}

	if opts.LoadSave || cfg.Run.LoadSave {
		doc, err := codec.LoadCSV(saveFile)
		if err != nil {
			return nil, fmt.Errorf("loading save: %w", err)
		}
		if err := w.Restore(doc.Rows, doc.Seed, doc.Generation); err != nil {
			return nil, fmt.Errorf("restoring save: %w", err)
		}
		slog.Info("resumed from save",
			"file", saveFile,
			"generation", w.Generation(),
			"seed", w.Seed(),
			"width", w.Width(),
			"height", w.Height(),
		)
	} else if cfg.Run.InitialMode != "" && cfg.Run.InitialMode != string(world.ModeSeed) {
		mode, err := world.ParsePopulateMode(cfg.Run.InitialMode)
		if err != nil {
			return nil, err
		}
		if err := w.Populate(mode); err != nil {
			return nil, err
		}
	}

	outputDir := cfg.Telemetry.OutputDir
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}
	output, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	return &Game{
		cfg:       cfg,
		opts:      opts,
		world:     w,
		collector: telemetry.NewCollector(cfg.Telemetry.WindowGenerations),
		output:    output,
	}, nil
}

// World exposes the underlying engine.
func (g *Game) World() *world.World { return g.world }

// Run steps generations until a stop condition hits, then saves if a save
// file is configured. Pacing uses the configured tick rate; stasis stops
// only fire when the corresponding pause flag is set.
func (g *Game) Run() (StopReason, error) {
	maxGens := g.cfg.Run.MaxGenerations
	if g.opts.MaxGenerations > 0 {
		maxGens = g.opts.MaxGenerations
	}

	var tick <-chan time.Time
	if !g.opts.Unpaced && g.cfg.Run.TickRate > 0 {
		ticker := time.NewTicker(time.Duration(float64(time.Second) / g.cfg.Run.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	var reason StopReason
	for {
		if tick != nil {
			<-tick
		}

		start := time.Now()
		g.world.Step()
		stepTime := time.Since(start)

		gen := g.world.Generation()
		stale := g.world.IsStalemate()
		osc := g.world.IsOscillating()

		g.collector.Observe(gen, g.world.Grid().Cells(), stepTime)
		if g.collector.ShouldFlush(gen) {
			stats := g.collector.Flush(gen, stale, osc)
			stats.LogWindow()
			if err := g.output.WriteStats(stats); err != nil {
				return "", err
			}
		}

		if g.cfg.Run.PauseOnStalemate && stale {
			slog.Info("run stopped", "reason", StopStalemate, "generation", gen)
			reason = StopStalemate
			break
		}
		if g.cfg.Run.PauseOnOscillators && osc {
			slog.Info("run stopped", "reason", StopOscillators, "generation", gen)
			reason = StopOscillators
			break
		}
		if maxGens > 0 && gen >= maxGens {
			reason = StopMaxGenerations
			break
		}
	}

	if err := g.save(); err != nil {
		return reason, err
	}
	return reason, nil
}

// save writes the final state to the configured save file, if any.
func (g *Game) save() error {
	saveFile := g.cfg.Run.SaveFile
	if g.opts.SaveFile != "" {
		saveFile = g.opts.SaveFile
	}
	if saveFile == "" {
		return nil
	}
	doc := codec.Document{
		Rows:       g.world.Rows(),
		Seed:       g.world.Seed(),
		Generation: g.world.Generation(),
	}
	if err := codec.SaveCSV(saveFile, doc); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	slog.Info("saved run", "file", saveFile, "generation", g.world.Generation())
	return nil
}

// Close flushes telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}
