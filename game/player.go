package game

import "math"

// Player combat tuning. Values the HUD also depends on (max hp,
// lives) live here rather than in Config because they are rules, not
// layout.
const (
	playerMaxHP       = 100
	playerMaxShield   = 50
	playerLives       = 3
	playerAmmo        = 10
	playerBombs       = 3
	playerCooldown    = 0.15
	rapidFireCooldown = 0.05

	bulletSpeed   = 700.0
	bulletDamage  = 10
	missileSpeed  = 500.0
	missileDamage = 50
	missileLife   = 3.0
	bombDamage    = 150

	playerHitRadius        = 30.0
	playerMissileHitRadius = 35.0

	shieldDuration    = 5.0
	rapidFireDuration = 8.0
	healAmount        = 30
	shieldAmount      = 30
	ammoAmount        = 5
	pickupRadius      = 40.0
	pickupScore       = 50
)

// Player is the player-controlled craft. It is created once per run
// and persists until the run ends; combat resolution and the
// controller share its mutation.
type Player struct {
	X, Y   float64
	VX, VY float64

	HP, MaxHP         int
	Shield, MaxShield int
	ShieldActive      bool
	ShieldTimer       float64

	Score int
	Lives int
	Level int
	Kills int

	Ammo       int
	Bombs      int
	RapidFire  bool
	RapidTimer float64

	// ShootTimer counts down to zero; firing is gated on it
	ShootCooldown float64
	ShootTimer    float64

	// InvTimer is the remaining invulnerability window after a hit
	InvTimer float64

	Dragging bool

	// TiltX is the horizontal bank angle in [-1, 1], derived from
	// pointer delta and decayed when not dragging
	TiltX float64
}

// NewPlayer returns a player at the default spawn point with default
// run stats
func NewPlayer(cfg Config) Player {
	return Player{
		X:             float64(cfg.ScreenWidth) / 2,
		Y:             float64(cfg.PlayHeight()) - 200,
		HP:            playerMaxHP,
		MaxHP:         playerMaxHP,
		Shield:        playerMaxShield,
		MaxShield:     playerMaxShield,
		Lives:         playerLives,
		Level:         1,
		Ammo:          playerAmmo,
		Bombs:         playerBombs,
		ShootCooldown: playerCooldown,
	}
}

// updatePlayerTimers advances the player's cooldown and buff timers,
// clearing buff flags when their timers lapse
func (g *Game) updatePlayerTimers(dt float64) {
	p := &g.player
	p.ShootTimer = max(0, p.ShootTimer-dt)
	p.InvTimer = max(0, p.InvTimer-dt)

	p.RapidTimer = max(0, p.RapidTimer-dt)
	if p.RapidTimer <= 0 {
		p.RapidFire = false
	}
	p.ShieldTimer = max(0, p.ShieldTimer-dt)
	if p.ShieldTimer <= 0 {
		p.ShieldActive = false
	}
}

// applyWeaponTriggers translates the frame's discrete action triggers
// into weapon fire. Dragging auto-fires the primary weapon subject to
// its own cooldown.
func (g *Game) applyWeaponTriggers(in Input) {
	if in.Fire || in.Dragging {
		g.playerShoot()
	}
	if in.Missile {
		g.playerFireMissile()
	}
	if in.Bomb {
		g.playerBomb()
	}
}

// playerShoot fires the twin guns if the cooldown has elapsed
func (g *Game) playerShoot() {
	p := &g.player
	if p.ShootTimer > 0 {
		return
	}
	cd := p.ShootCooldown
	if p.RapidFire {
		cd = rapidFireCooldown
	}
	p.ShootTimer = cd

	// Double barrel
	g.spawnBullet(p.X-15, p.Y-40, 0, -bulletSpeed, FactionPlayer, colorBullet, bulletDamage)
	g.spawnBullet(p.X+15, p.Y-40, 0, -bulletSpeed, FactionPlayer, colorBullet, bulletDamage)

	g.shakeAmt = 2
	g.shakeTimer = 0.03
}

// playerFireMissile launches one homing missile at the nearest active
// enemy, or straight ahead if none exist. No-op with zero ammo.
func (g *Game) playerFireMissile() {
	p := &g.player
	if p.Ammo <= 0 {
		return
	}
	p.Ammo--

	tx, ty := p.X, -100.0
	nearest := math.MaxFloat64
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		d := Dist(p.X, p.Y, e.X, e.Y)
		if d < nearest {
			nearest = d
			tx, ty = e.X, e.Y
		}
	}
	g.spawnMissile(p.X, p.Y-40, tx, ty, FactionPlayer, missileDamage)
}

// playerBomb damages every active enemy on screen. No-op with zero
// bombs.
func (g *Game) playerBomb() {
	p := &g.player
	if p.Bombs <= 0 {
		return
	}
	p.Bombs--
	g.resolveBomb()
}
