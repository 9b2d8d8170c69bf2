// Command pong-sim plays matches headlessly with random key presses at a
// fixed time step, checking state invariants every frame.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"

	"go.uber.org/zap"

	"pong/internal/app"
	"pong/internal/core"
	"pong/internal/game"
	"pong/internal/logging"
	"pong/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.LogLevel = "warn"
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 60*60*5, "frames to simulate")
	snapshot := flag.String("snapshot", "", "write the final court to this PNG file")
	flag.Parse()

	logger, err := logging.New(cfg.LogOptions())
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	gameCfg, err := cfg.GameConfig()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	state := game.New(gameCfg, cfg.Seed)
	keys := core.NewRNG(cfg.Seed + 1)
	dt := core.FixedDelta(cfg.TPS)

	var matches, points, violations int
	for i := 0; i < *frames; i++ {
		state.Update(dt, randomInput(keys))
		for _, ev := range state.Events() {
			switch ev.Kind {
			case game.EventScored:
				points++
			case game.EventGameOver:
				matches++
			}
		}
		logging.LogEvents(logger, state.Events())
		if err := state.CheckInvariants(); err != nil {
			violations++
			logger.Error("invariant violated", zap.Int("frame", i), zap.Error(err))
		}
	}

	fmt.Printf("frames=%d matches=%d points=%d score=%d-%d phase=%s violations=%d\n",
		*frames, matches, points, state.Score(game.Left), state.Score(game.Right), state.Phase(), violations)

	if *snapshot != "" {
		if err := writePNG(*snapshot, render.Build(state)); err != nil {
			logger.Fatal("write snapshot", zap.Error(err))
		}
	}
	if violations > 0 {
		os.Exit(1)
	}
}

// randomInput holds keys for long stretches and taps the edge-triggered
// keys rarely so rallies actually happen.
func randomInput(r *core.RNG) game.Input {
	return game.Input{
		LeftUp:    r.IntN(3) == 0,
		LeftDown:  r.IntN(3) == 0,
		RightUp:   r.IntN(3) == 0,
		RightDown: r.IntN(3) == 0,
		Start:     r.IntN(30) == 0,
		Release:   r.IntN(45) == 0,
		Restart:   r.IntN(120) == 0,
	}
}

func writePNG(path string, sc render.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, render.Rasterize(sc, color.White, color.Black)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
