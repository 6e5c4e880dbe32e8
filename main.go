package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"fighterjet/game"
)

func main() {
	config := game.DefaultConfig()
	app := NewApp(config)

	ebiten.SetWindowSize(config.ScreenWidth/2, config.ScreenHeight/2)
	ebiten.SetWindowTitle("Fighter Jet")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
