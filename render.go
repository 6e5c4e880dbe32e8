package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"fighterjet/game"
)

var (
	colorSky    = color.RGBA{10, 20, 80, 255}
	colorHUDBg  = color.RGBA{0, 0, 20, 230}
	colorWhite  = color.RGBA{255, 255, 255, 255}
	colorGold   = color.RGBA{255, 215, 0, 255}
	colorCyan   = color.RGBA{0, 220, 255, 255}
	colorRed    = color.RGBA{255, 50, 50, 255}
	colorGreen  = color.RGBA{0, 255, 80, 255}
	colorJet    = color.RGBA{180, 200, 220, 255}
	colorEnemy  = color.RGBA{220, 50, 50, 255}
	colorPurple = color.RGBA{160, 32, 240, 255}
)

// render draws one frame from the simulation's read-only snapshot
func (a *App) render(screen *ebiten.Image) {
	screen.Fill(colorSky)
	a.drawStars(screen)

	// Screen shake offset
	var shakeX, shakeY float32
	if amt := a.sim.ShakeIntensity(); amt > 0 {
		shakeX = float32(rand.Intn(3)-1) * float32(amt)
		shakeY = float32(rand.Intn(3)-1) * float32(amt)
	}

	hud := a.sim.HUD()
	switch hud.Mode {
	case game.ModeMenu:
		a.drawMenu(screen, hud)
	case game.ModePlaying:
		a.drawPlay(screen, hud, shakeX, shakeY)
		a.drawHUD(screen, hud)
	case game.ModePaused:
		a.drawPlay(screen, hud, 0, 0)
		a.drawHUD(screen, hud)
		a.drawCenteredText(screen, "PAUSED", 600, colorCyan)
		a.drawCenteredText(screen, "TAP TO RESUME", 650, colorWhite)
	case game.ModeGameOver:
		a.drawGameOver(screen, hud)
	}
}

// drawPlay draws every active entity in the play area
func (a *App) drawPlay(screen *ebiten.Image, hud game.HUD, shakeX, shakeY float32) {
	for _, pu := range a.sim.PowerUps() {
		if !pu.Active {
			continue
		}
		x := float32(pu.X) + shakeX
		y := float32(pu.Y+math.Sin(pu.Bob*3)*5) + shakeY
		vector.DrawFilledCircle(screen, x, y, 22, colorGreen, true)
		vector.StrokeCircle(screen, x, y, 22, 3, colorWhite, true)
		text.Draw(screen, pu.Kind.String(), basicfont.Face7x13, int(x)-7, int(y)+4, color.Black)
	}

	for _, b := range a.sim.Bullets() {
		if !b.Active {
			continue
		}
		x := float32(b.X) + shakeX
		y := float32(b.Y) + shakeY
		if b.Owner == game.FactionEnemy {
			vector.DrawFilledCircle(screen, x, y, 6, b.Col, true)
		} else {
			vector.DrawFilledRect(screen, x-3, y-12, 6, 16, b.Col, true)
		}
	}

	for _, m := range a.sim.Missiles() {
		if !m.Active {
			continue
		}
		x := float32(m.X) + shakeX
		y := float32(m.Y) + shakeY
		vector.DrawFilledRect(screen, x-3, y-10, 6, 20, colorPurple, true)
		vector.DrawFilledCircle(screen, x, y, 8, color.NRGBA{255, 100, 0, 80}, true)
	}

	for _, e := range a.sim.Enemies() {
		if !e.Active {
			continue
		}
		a.drawEnemy(screen, e, shakeX, shakeY)
	}

	a.drawPlayer(screen, shakeX, shakeY)

	for _, ex := range a.sim.Explosions() {
		fade := ex.Life / ex.MaxLife
		clr := color.NRGBA{ex.Col.R, ex.Col.G, ex.Col.B, uint8(255 * fade)}
		vector.DrawFilledCircle(screen, float32(ex.X)+shakeX, float32(ex.Y)+shakeY, float32(ex.Radius), clr, true)
	}

	if hud.BossActive {
		w := float32(a.cfg.ScreenWidth)
		vector.DrawFilledRect(screen, 50, 10, w-100, 20, color.RGBA{60, 0, 0, 255}, false)
		vector.DrawFilledRect(screen, 50, 10, (w-100)*float32(hud.BossHPRatio), 20, color.RGBA{200, 0, 50, 255}, false)
		a.drawCenteredText(screen, "BOSS", 25, colorWhite)
	}

	if hud.Combo > 1 {
		p := a.sim.PlayerState()
		text.Draw(screen, fmt.Sprintf("X%d!", hud.Combo), basicfont.Face7x13, int(p.X)-15, int(p.Y)-100, colorGold)
	}
}

// drawPlayer draws the craft, blinking while invulnerable, with a
// shield ring while the shield buff is active
func (a *App) drawPlayer(screen *ebiten.Image, shakeX, shakeY float32) {
	p := a.sim.PlayerState()
	if p.InvTimer > 0 && int(p.InvTimer*10)%2 == 0 {
		return
	}
	x := float32(p.X) + shakeX
	y := float32(p.Y) + shakeY
	tilt := float32(p.TiltX)

	// Wings, fuselage, cockpit
	vector.DrawFilledRect(screen, x-50+tilt*5, y+20, 100, 10, colorJet, true)
	vector.DrawFilledRect(screen, x-12, y-40, 24, 80, colorJet, true)
	vector.DrawFilledRect(screen, x-5, y-32, 10, 12, colorCyan, true)

	if p.ShieldActive && p.Shield > 0 {
		vector.StrokeCircle(screen, x, y, 55, 4, color.NRGBA{0, 200, 255, 150}, true)
	}
}

// drawEnemy draws an enemy jet with a small hp bar above it
func (a *App) drawEnemy(screen *ebiten.Image, e game.Enemy, shakeX, shakeY float32) {
	x := float32(e.X) + shakeX
	y := float32(e.Y) + shakeY

	scale := float32(1)
	clr := colorEnemy
	switch e.Class {
	case game.EnemyHeavy:
		scale = 2
	case game.EnemyBoss:
		scale = 3
		clr = color.RGBA{150, 0, 200, 255}
	}

	vector.DrawFilledRect(screen, x-30*scale, y, 60*scale, 8*scale, clr, true)
	vector.DrawFilledRect(screen, x-8*scale, y-30*scale, 16*scale, 50*scale, clr, true)

	if e.Class != game.EnemyBoss {
		ratio := float32(e.HP) / float32(e.MaxHP)
		vector.DrawFilledRect(screen, x-20, y-35*scale, 40, 5, color.RGBA{60, 0, 0, 255}, false)
		vector.DrawFilledRect(screen, x-20, y-35*scale, 40*ratio, 5, colorGreen, false)
	}
}

// drawHUD draws the bottom HUD strip: bars, counters and buffs
func (a *App) drawHUD(screen *ebiten.Image, hud game.HUD) {
	w := float32(a.cfg.ScreenWidth)
	hudY := a.cfg.PlayHeight()

	vector.DrawFilledRect(screen, 0, float32(hudY), w, float32(a.cfg.HUDHeight), colorHUDBg, false)
	vector.DrawFilledRect(screen, 0, float32(hudY), w, 3, colorCyan, false)

	barW := float32(180)
	vector.DrawFilledRect(screen, 10, float32(hudY)+10, barW, 18, color.RGBA{60, 0, 0, 255}, false)
	vector.DrawFilledRect(screen, 10, float32(hudY)+10, barW*float32(hud.HP)/float32(hud.MaxHP), 18, colorGreen, false)
	vector.DrawFilledRect(screen, 10, float32(hudY)+33, barW, 18, color.RGBA{0, 0, 60, 255}, false)
	vector.DrawFilledRect(screen, 10, float32(hudY)+33, barW*float32(hud.Shield)/float32(hud.MaxShield), 18, colorCyan, false)

	text.Draw(screen, fmt.Sprintf("SCORE %d", hud.Score), basicfont.Face7x13, a.cfg.ScreenWidth/2-60, hudY+20, colorGold)
	text.Draw(screen, fmt.Sprintf("LV %d", hud.Level), basicfont.Face7x13, a.cfg.ScreenWidth/2-30, hudY+40, colorCyan)
	text.Draw(screen, fmt.Sprintf("LIVES %d", hud.Lives), basicfont.Face7x13, a.cfg.ScreenWidth-100, hudY+20, colorJet)
	text.Draw(screen, fmt.Sprintf("MS %d  BM %d", hud.Ammo, hud.Bombs), basicfont.Face7x13, 10, hudY+75, colorWhite)
	text.Draw(screen, fmt.Sprintf("FPS %.0f", a.fps), basicfont.Face7x13, a.cfg.ScreenWidth-100, hudY+75, colorJet)

	if hud.Combo > 1 {
		text.Draw(screen, fmt.Sprintf("X%d COMBO", hud.Combo), basicfont.Face7x13, a.cfg.ScreenWidth/2-40, hudY+75, colorGold)
	}
	if hud.RapidFire {
		text.Draw(screen, "RAPID!", basicfont.Face7x13, a.cfg.ScreenWidth-100, hudY+40, colorGold)
	}
}

// drawMenu draws the title screen
func (a *App) drawMenu(screen *ebiten.Image, hud game.HUD) {
	a.drawCenteredText(screen, "FIGHTER JET", 300, colorGold)
	a.drawCenteredText(screen, "TAP TO START", 520, colorWhite)
	a.drawCenteredText(screen, "DRAG TO MOVE   SPACE FIRE   M MISSILE   B BOMB   P PAUSE", 660, colorCyan)
	if hud.HighScore > 0 {
		a.drawCenteredText(screen, fmt.Sprintf("BEST %d", hud.HighScore), 580, colorGold)
	}
}

// drawGameOver draws the end-of-run summary with a blinking restart
// prompt
func (a *App) drawGameOver(screen *ebiten.Image, hud game.HUD) {
	a.drawCenteredText(screen, "GAME OVER", 300, colorRed)
	a.drawCenteredText(screen, fmt.Sprintf("SCORE %d", hud.Score), 480, colorGold)
	a.drawCenteredText(screen, fmt.Sprintf("KILLS %d", hud.Kills), 520, colorWhite)
	a.drawCenteredText(screen, fmt.Sprintf("LEVEL %d", hud.Level), 560, colorCyan)
	if hud.Score >= hud.HighScore && hud.Score > 0 {
		a.drawCenteredText(screen, "NEW RECORD!", 610, colorGold)
	}
	if int(a.sim.GameOverTimer()*2)%2 == 0 {
		a.drawCenteredText(screen, "TAP TO RESTART", 680, colorWhite)
	}
}

func (a *App) drawCenteredText(screen *ebiten.Image, s string, y int, clr color.Color) {
	x := a.cfg.ScreenWidth/2 - len(s)*7/2
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}
