//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"knot-chain/internal/app"
	"knot-chain/internal/config"
	"knot-chain/internal/logging"
	_ "knot-chain/internal/sims/rope"
)

func main() {
	cfg := app.NewConfig()
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	cfg.Bind(fs)
	_ = fs.Parse(os.Args[1:])

	logger, err := logging.New(config.LoggingConfig{Level: "info"}, cfg.Verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	sim, err := app.BuildSim(cfg)
	if err != nil {
		logger.Fatal("Failed to build sim", zap.String("sim", cfg.Sim), zap.Error(err))
	}

	game := app.New(sim, cfg.Scale, cfg.SPS)
	size := sim.Size()
	logger.Info("Starting viewer",
		zap.String("sim", sim.Name()),
		zap.String("input", cfg.Input),
		zap.Int("sps", cfg.SPS))

	ebiten.SetWindowTitle("knot-chain: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("Viewer stopped", zap.Error(err))
	}
}
