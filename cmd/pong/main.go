//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pong/internal/app"
	"pong/internal/game"
	"pong/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	// A dragged or paused window can stall for seconds; keep the ball from
	// tunneling through paddles when it resumes.
	cfg.MaxDelta = 0.25
	cfg.Bind(flag.CommandLine)
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
	g := app.New(state, logger, cfg.TPS, cfg.FixedStep)
	size := gameCfg.Size()

	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(float64(size.W)*cfg.Scale), int(float64(size.H)*cfg.Scale))

	logger.Info("window opened", zap.Int64("seed", cfg.Seed), zap.Int("tps", cfg.TPS))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", zap.Error(err))
	}
}
