//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pixlife/internal/app"
	"pixlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := life.NewWithConfig(life.Config{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Density: cfg.Density,
		Seed:    cfg.Seed,
	})
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUD)

	ebiten.SetWindowTitle("pixlife — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.ScreenSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
