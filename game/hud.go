package game

// HUD is the scalar state the rendering layer needs each frame
type HUD struct {
	HP, MaxHP         int
	Shield, MaxShield int

	Score     int
	HighScore int
	Level     int
	Lives     int
	Kills     int

	Ammo  int
	Bombs int

	Combo     int
	RapidFire bool

	// BossHPRatio is the boss's remaining hp fraction; only
	// meaningful while BossActive
	BossActive  bool
	BossHPRatio float64

	Mode     Mode
	GameTime float64
}

// HUD returns the current scalar HUD state
func (g *Game) HUD() HUD {
	h := HUD{
		HP:        g.player.HP,
		MaxHP:     g.player.MaxHP,
		Shield:    g.player.Shield,
		MaxShield: g.player.MaxShield,
		Score:     g.player.Score,
		HighScore: g.highScore,
		Level:     g.player.Level,
		Lives:     g.player.Lives,
		Kills:     g.player.Kills,
		Ammo:      g.player.Ammo,
		Bombs:     g.player.Bombs,
		Combo:     g.combo,
		RapidFire: g.player.RapidFire,
		Mode:      g.mode,
		GameTime:  g.gameTime,
	}
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.Active && e.Class == EnemyBoss {
			h.BossActive = true
			h.BossHPRatio = float64(e.HP) / float64(e.MaxHP)
			break
		}
	}
	return h
}

// Mode returns the current top-level mode
func (g *Game) Mode() Mode {
	return g.mode
}

// PlayerState returns a copy of the player record
func (g *Game) PlayerState() Player {
	return g.player
}

// Bullets exposes the bullet pool for rendering. The slice is owned
// by the simulation; callers must not retain or mutate it.
func (g *Game) Bullets() []Bullet {
	return g.bullets
}

// Missiles exposes the missile pool for rendering
func (g *Game) Missiles() []Missile {
	return g.missiles
}

// Explosions exposes the explosion pool for rendering
func (g *Game) Explosions() []Explosion {
	return g.explosions
}

// PowerUps exposes the power-up pool for rendering
func (g *Game) PowerUps() []PowerUp {
	return g.powerups
}

// Enemies exposes the enemy pool for rendering
func (g *Game) Enemies() []Enemy {
	return g.enemies
}

// ShakeIntensity returns the current screen-shake amplitude in
// pixels, zero when the shake pulse has decayed
func (g *Game) ShakeIntensity() float64 {
	if g.shakeTimer <= 0 {
		return 0
	}
	return g.shakeAmt * (g.shakeTimer / 0.3)
}

// GameOverTimer returns the time spent on the game-over screen,
// used by the renderer for blink pacing
func (g *Game) GameOverTimer() float64 {
	return g.gameOverTimer
}
