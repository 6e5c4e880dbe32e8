package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"fighterjet/game"
)

// App adapts the simulation to the ebiten game loop: it samples raw
// input into the abstract input contract, measures frame delta time
// and hands both to the simulation each tick
type App struct {
	cfg game.Config
	sim *game.Game

	touchIDs []ebiten.TouchID
	stars    []star

	lastUpdateTime time.Time

	// FPS tracking, refreshed every half second
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64
}

// NewApp creates the application shell around a fresh simulation
func NewApp(cfg game.Config) *App {
	return &App{
		cfg:            cfg,
		sim:            game.NewGame(cfg),
		touchIDs:       make([]ebiten.TouchID, 0, 8),
		stars:          newStarfield(cfg.ScreenWidth, cfg.ScreenHeight),
		lastUpdateTime: time.Now(),
		fps:            60.0,
	}
}

// Update implements ebiten.Game
func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now

	a.fpsUpdateTimer += deltaTime
	a.fpsUpdateCounter++
	if a.fpsUpdateTimer >= 0.5 {
		a.fps = float64(a.fpsUpdateCounter) / a.fpsUpdateTimer
		a.fpsUpdateCounter = 0
		a.fpsUpdateTimer = 0
	}

	a.updateStars(deltaTime)
	a.sim.Step(a.readInput(), deltaTime)
	return nil
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	a.render(screen)
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}
