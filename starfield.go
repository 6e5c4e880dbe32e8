package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// star is one background speck scrolling down the screen. Depth sets
// both scroll speed and brightness for a cheap parallax effect.
type star struct {
	x, y  float64
	depth float64
}

const numStars = 96

func newStarfield(w, h int) []star {
	stars := make([]star, numStars)
	for i := range stars {
		stars[i] = star{
			x:     rand.Float64() * float64(w),
			y:     rand.Float64() * float64(h),
			depth: 0.2 + rand.Float64()*0.8,
		}
	}
	return stars
}

// updateStars scrolls the field downward, respawning each star at the
// top edge once it leaves the screen
func (a *App) updateStars(dt float64) {
	w := float64(a.cfg.ScreenWidth)
	h := float64(a.cfg.ScreenHeight)
	for i := range a.stars {
		s := &a.stars[i]
		s.y += (40 + 200*s.depth) * dt
		if s.y > h {
			s.y = 0
			s.x = rand.Float64() * w
		}
	}
}

// drawStars draws the background specks, brighter the closer they are
func (a *App) drawStars(screen *ebiten.Image) {
	for i := range a.stars {
		s := &a.stars[i]
		v := uint8(80 + 175*s.depth)
		size := float32(1 + s.depth)
		vector.DrawFilledRect(screen, float32(s.x), float32(s.y), size, size, color.RGBA{v, v, v, 255}, false)
	}
}
