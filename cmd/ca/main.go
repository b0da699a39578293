//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"colorlife/internal/app"
	"colorlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	sim := life.NewWithConfig(cfg.Life)
	if !cfg.Empty {
		sim.Reset(cfg.Life.Seed)
	}
	log.Printf("field %dx%d, %d starting cells (%.1f%%)", sim.Width(), sim.Height(), sim.Living(), sim.Coverage())

	game := app.New(sim, cfg)
	defer game.Close()
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("colorlife: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
