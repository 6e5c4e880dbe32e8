package game

import (
	"image/color"
	"math/rand"
)

// maxFrameDelta caps the per-frame time step so a stalled host never
// produces a large integration jump (floor of ~20Hz simulated rate)
const maxFrameDelta = 0.05

const (
	comboWindow            = 2.0
	respawnInvulnerability = 3.0
	enemyMissileDamage     = 25
	missileLaunchSpeed     = 400.0
)

// frameMarks records pool lengths at the start of a frame. Collision
// resolution only tests entities below these marks, so anything
// spawned during the current frame waits one frame before it can hit
// or be hit.
type frameMarks struct {
	bullets  int
	missiles int
	enemies  int
	powerups int
}

// Game owns the entire simulation state: the player, all entity
// pools, spawn scheduling and the top-level mode. One Game is stepped
// by exactly one goroutine; there is no internal locking.
type Game struct {
	cfg Config
	rng *rand.Rand

	mode Mode

	player Player

	bullets    []Bullet
	missiles   []Missile
	explosions []Explosion
	powerups   []PowerUp
	enemies    []Enemy

	gameTime float64
	director SpawnDirector

	// bossAlive guards boss exclusivity; bossKills feeds the level
	// bonus for defeated bosses
	bossAlive bool
	bossKills int

	combo      int
	comboTimer float64
	highScore  int

	shakeTimer float64
	shakeAmt   float64

	// gameOverTimer paces the game-over blink; it carries no logic
	gameOverTimer float64

	marks frameMarks
}

// NewGame creates a new simulation in the menu mode
func NewGame(cfg Config) *Game {
	g := &Game{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		mode:       ModeMenu,
		bullets:    make([]Bullet, 0, 256),
		missiles:   make([]Missile, 0, 32),
		explosions: make([]Explosion, 0, 64),
		powerups:   make([]PowerUp, 0, 16),
		enemies:    make([]Enemy, 0, 64),
	}
	g.player = NewPlayer(cfg)
	return g
}

// Step advances the simulation by one frame. dt is the elapsed host
// time in seconds; it is clamped to maxFrameDelta. Outside ModePlaying
// only mode transitions and cosmetic timers run.
func (g *Game) Step(in Input, dt float64) {
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	switch g.mode {
	case ModeMenu:
		if in.Interact {
			g.mode = ModePlaying
		}
		return
	case ModePaused:
		if in.Pause || in.Interact {
			g.mode = ModePlaying
		}
		return
	case ModeGameOver:
		g.gameOverTimer += dt
		if in.Interact {
			g.resetRun()
			g.mode = ModePlaying
		}
		return
	case ModeWin:
		return
	}

	if in.Pause {
		g.mode = ModePaused
		return
	}

	g.gameTime += dt
	g.marks = frameMarks{
		bullets:  len(g.bullets),
		missiles: len(g.missiles),
		enemies:  len(g.enemies),
		powerups: len(g.powerups),
	}

	g.updatePlayerTimers(dt)
	g.shakeTimer = max(0, g.shakeTimer-dt)
	g.comboTimer = max(0, g.comboTimer-dt)

	g.applyWeaponTriggers(in)
	g.director.Update(g, dt)
	g.integrate(in, dt)
	g.resolveCollisions()
	g.compactPools()
	g.updateDerived()
}

// resetRun clears every transient pool and reinitializes the player
// for a fresh run. The high score survives resets.
func (g *Game) resetRun() {
	g.bullets = g.bullets[:0]
	g.missiles = g.missiles[:0]
	g.explosions = g.explosions[:0]
	g.powerups = g.powerups[:0]
	g.enemies = g.enemies[:0]

	g.gameTime = 0
	g.director = SpawnDirector{}
	g.bossAlive = false
	g.bossKills = 0
	g.combo = 0
	g.comboTimer = 0
	g.shakeTimer = 0
	g.shakeAmt = 0
	g.gameOverTimer = 0
	g.marks = frameMarks{}

	g.player = NewPlayer(g.cfg)
}

// endRun records the high score and transitions to game over
func (g *Game) endRun() {
	if g.player.Score > g.highScore {
		g.highScore = g.player.Score
	}
	g.mode = ModeGameOver
	g.gameOverTimer = 0
}

// updateDerived refreshes the per-frame derived state: combo decay
// and the level, which grows with survival time and defeated bosses
func (g *Game) updateDerived() {
	if g.comboTimer <= 0 {
		g.combo = 0
	}
	g.player.Level = 1 + int(g.gameTime/30) + g.bossKills
}

// spawnBullet appends a bullet to the pool
func (g *Game) spawnBullet(x, y, vx, vy float64, owner Faction, col color.RGBA, dmg int) {
	g.bullets = append(g.bullets, Bullet{
		X: x, Y: y,
		VX: vx, VY: vy,
		Active: true,
		Owner:  owner,
		Damage: dmg,
		Col:    col,
	})
}

// spawnMissile appends a homing missile launched toward (tx, ty)
func (g *Game) spawnMissile(x, y, tx, ty float64, owner Faction, dmg int) {
	dx, dy := tx-x, ty-y
	if l := Dist(x, y, tx, ty); l > 0 {
		dx /= l
		dy /= l
	}
	g.missiles = append(g.missiles, Missile{
		X: x, Y: y,
		VX:      dx * missileLaunchSpeed,
		VY:      dy * missileLaunchSpeed,
		TargetX: tx, TargetY: ty,
		Active: true,
		Owner:  owner,
		Damage: dmg,
		Life:   missileLife,
	})
}

// spawnExplosion appends a cosmetic explosion and pulses the screen
// shake in proportion to its size
func (g *Game) spawnExplosion(x, y, size float64, col color.RGBA) {
	g.explosions = append(g.explosions, Explosion{
		X: x, Y: y,
		Radius:    size * 0.1,
		MaxRadius: size,
		Life:      0.5,
		MaxLife:   0.5,
		Col:       col,
	})
	g.shakeTimer = 0.2
	g.shakeAmt = size * 0.5
}

// spawnPowerUp appends a power-up of a random kind falling from (x, y)
func (g *Game) spawnPowerUp(x, y float64) {
	g.powerups = append(g.powerups, PowerUp{
		X: x, Y: y,
		VY:     80.0,
		Active: true,
		Kind:   PowerUpKind(g.rng.Intn(numPowerUpKinds)),
	})
}

// spawnEnemy appends an enemy of the given class entering from the
// top edge. The boss enters centered; everyone else at a random x
// with a random initial lateral direction.
func (g *Game) spawnEnemy(class EnemyClass) {
	cfg := GetEnemyClassConfig(class)
	w := float64(g.cfg.ScreenWidth)

	e := Enemy{
		X:             60 + g.rng.Float64()*(w-120),
		Y:             -80,
		VX:            cfg.SpeedX,
		VY:            cfg.SpeedY,
		Active:        true,
		HP:            cfg.HP,
		MaxHP:         cfg.HP,
		Class:         class,
		ShootTimer:    cfg.ShootInterval,
		ShootInterval: cfg.ShootInterval,
		Depth:         5 + g.rng.Float64()*10,
		Score:         cfg.Score,
	}
	if class == EnemyBoss {
		e.X = w / 2
	} else if g.rng.Intn(2) == 0 {
		e.VX = -e.VX
	}
	g.enemies = append(g.enemies, e)
}

// compactPools evicts every record marked inactive. Runs once per
// frame, after collision resolution.
func (g *Game) compactPools() {
	g.bullets = compact(g.bullets, func(b *Bullet) bool { return b.Active })
	g.missiles = compact(g.missiles, func(m *Missile) bool { return m.Active })
	g.enemies = compact(g.enemies, func(e *Enemy) bool { return e.Active })
	g.powerups = compact(g.powerups, func(p *PowerUp) bool { return p.Active })
	g.explosions = compact(g.explosions, func(e *Explosion) bool { return e.Life > 0 })
}

// compact filters a pool in place, keeping records for which alive
// returns true
func compact[T any](pool []T, alive func(*T) bool) []T {
	kept := pool[:0]
	for i := range pool {
		if alive(&pool[i]) {
			kept = append(kept, pool[i])
		}
	}
	return kept
}
