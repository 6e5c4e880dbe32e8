package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"fighterjet/game"
)

// readInput translates this frame's raw mouse/touch/keyboard state
// into the simulation's abstract input contract. Dragging inside the
// play area moves the craft; Space/M/B/P mirror the original touch
// buttons for desktop play.
func (a *App) readInput() game.Input {
	var in game.Input

	mx, my := ebiten.CursorPosition()
	in.PointerX = float64(mx)
	in.PointerY = float64(my)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && my < a.cfg.PlayHeight() {
		in.Dragging = true
	}

	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	if len(a.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(a.touchIDs[0])
		in.PointerX = float64(tx)
		in.PointerY = float64(ty)
		if ty < a.cfg.PlayHeight() {
			in.Dragging = true
		}
	}

	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Missile = inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.Bomb = inpututil.IsKeyJustPressed(ebiten.KeyB)
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP)

	in.Interact = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0

	return in
}
