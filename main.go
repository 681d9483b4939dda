package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rishik7575/3d-farm-visualizer/internal/config"
	"github.com/rishik7575/3d-farm-visualizer/internal/farm"
	"github.com/rishik7575/3d-farm-visualizer/internal/game"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Load crop model definitions; built-in defaults cover any gap
	if err := farm.LoadCropConfig("assets/crops.yaml"); err != nil {
		log.Printf("Warning: Failed to load crop config: %v", err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewFarmGame(cfg)
	defer g.Shutdown()

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
