package game

import "math"

// Movement tuning
const (
	dragFollowRate  = 8.0
	tiltDecay       = 0.9
	homingSpeed     = 500.0
	homingTurnRate  = 3.0
	wobbleAmplitude = 30.0
	bossSpreadTime  = 60.0
)

// integrate advances every active entity by one frame of motion. Runs
// after spawning and before collision resolution.
func (g *Game) integrate(in Input, dt float64) {
	g.movePlayer(in, dt)
	g.moveBullets(dt)
	g.moveMissiles(dt)
	g.moveEnemies(dt)
	g.movePowerUps(dt)
	g.moveExplosions(dt)
}

// movePlayer eases the craft toward the pointer while dragging and
// keeps it inside the play area. The bank angle follows the
// horizontal pointer delta and decays when not dragging.
func (g *Game) movePlayer(in Input, dt float64) {
	p := &g.player
	w := float64(g.cfg.ScreenWidth)
	h := float64(g.cfg.PlayHeight())

	p.TiltX = Clamp(p.TiltX*tiltDecay, -1, 1)
	p.Dragging = in.Dragging
	if in.Dragging {
		dx := in.PointerX - p.X
		dy := in.PointerY - p.Y
		p.TiltX = Clamp(dx/100, -1, 1)
		p.X += dx * dt * dragFollowRate
		p.Y += dy * dt * dragFollowRate
	}
	p.X = Clamp(p.X, 40, w-40)
	p.Y = Clamp(p.Y, 60, h-80)
}

// moveBullets advances bullets linearly and culls anything past a
// small margin beyond the play area
func (g *Game) moveBullets(dt float64) {
	w := float64(g.cfg.ScreenWidth)
	h := float64(g.cfg.PlayHeight())
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt
		if b.Y < -20 || b.Y > h+20 || b.X < -20 || b.X > w+20 {
			b.Active = false
		}
	}
}

// moveMissiles counts down missile life, re-steers each missile
// toward the nearest live entity of the opposite faction with an
// exponential velocity blend, then advances it
func (g *Game) moveMissiles(dt float64) {
	w := float64(g.cfg.ScreenWidth)
	h := float64(g.cfg.PlayHeight())
	for i := range g.missiles {
		m := &g.missiles[i]
		if !m.Active {
			continue
		}
		m.Life -= dt
		if m.Life <= 0 {
			m.Active = false
			continue
		}

		if tx, ty, ok := g.missileTarget(m); ok {
			m.TargetX, m.TargetY = tx, ty
			dx, dy := tx-m.X, ty-m.Y
			if l := math.Sqrt(dx*dx + dy*dy); l > 0 {
				dx /= l
				dy /= l
			}
			m.VX = Lerp(m.VX, dx*homingSpeed, homingTurnRate*dt)
			m.VY = Lerp(m.VY, dy*homingSpeed, homingTurnRate*dt)
		}

		m.X += m.VX * dt
		m.Y += m.VY * dt

		if m.Y < -50 || m.Y > h+50 || m.X < -50 || m.X > w+50 {
			m.Active = false
		}
	}
}

// missileTarget returns the current homing target for a missile:
// the nearest active enemy for player missiles, the player for enemy
// missiles
func (g *Game) missileTarget(m *Missile) (float64, float64, bool) {
	if m.Owner == FactionEnemy {
		return g.player.X, g.player.Y, true
	}
	found := false
	var tx, ty float64
	nearest := math.MaxFloat64
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		d := Dist(m.X, m.Y, e.X, e.Y)
		if d < nearest {
			nearest = d
			tx, ty = e.X, e.Y
			found = true
		}
	}
	return tx, ty, found
}

// moveEnemies advances each enemy through its class motion pattern
// and fires its weapons when the shoot timer lapses. Enemies crossing
// the bottom margin escaped; they deactivate without any death side
// effects.
func (g *Game) moveEnemies(dt float64) {
	w := float64(g.cfg.ScreenWidth)
	h := float64(g.cfg.PlayHeight())
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}

		e.MoveTimer += dt

		if e.Class == EnemyBoss {
			// Patrol inside a bounded box near the top
			e.X += e.VX * dt
			e.Y += e.VY * dt * 0.2
			if e.X < 80 || e.X > w-80 {
				e.VX = -e.VX
			}
			if e.Y > 200 {
				e.VY = -math.Abs(e.VY)
			}
			if e.Y < 50 {
				e.VY = math.Abs(e.VY)
			}
		} else {
			e.X += e.VX * dt
			e.Y += e.VY * dt
			if e.X < 30 || e.X > w-30 {
				e.VX = -e.VX
			}
			e.X += math.Sin(e.MoveTimer*2) * wobbleAmplitude * dt
		}

		if e.Y > h+100 {
			e.Active = false
			continue
		}

		e.ShootTimer -= dt
		if e.ShootTimer <= 0 {
			e.ShootTimer = e.ShootInterval
			g.enemyFire(e)
		}
	}
}

// enemyFire emits an enemy's weapons: an aimed bullet at the player,
// plus the boss's five-way spread once past bossSpreadTime, plus an
// occasional homing missile from heavies
func (g *Game) enemyFire(e *Enemy) {
	p := &g.player
	cfg := GetEnemyClassConfig(e.Class)

	dx, dy := p.X-e.X, p.Y-e.Y
	if l := math.Sqrt(dx*dx + dy*dy); l > 0 {
		dx /= l
		dy /= l
	}
	g.spawnBullet(e.X, e.Y, dx*cfg.BulletSpeed, dy*cfg.BulletSpeed, FactionEnemy, colorEnemyBullet, cfg.BulletDamage)

	if e.Class == EnemyBoss && g.gameTime > bossSpreadTime {
		for i := -2; i <= 2; i++ {
			a := math.Atan2(dy, dx) + float64(i)*0.3
			g.spawnBullet(e.X, e.Y, math.Cos(a)*300, math.Sin(a)*300, FactionEnemy, colorSpreadShot, 15)
		}
	}

	if e.Class == EnemyHeavy && g.rng.Intn(3) == 0 {
		g.spawnMissile(e.X, e.Y, p.X, p.Y, FactionEnemy, enemyMissileDamage)
	}
}

// movePowerUps drifts power-ups downward, advances their bob phase
// and culls them past the bottom margin
func (g *Game) movePowerUps(dt float64) {
	h := float64(g.cfg.PlayHeight())
	for i := range g.powerups {
		pu := &g.powerups[i]
		if !pu.Active {
			continue
		}
		pu.Y += pu.VY * dt
		pu.Bob += dt
		if pu.Y > h+50 {
			pu.Active = false
		}
	}
}

// moveExplosions burns down explosion life; the radius is a pure
// function of the life fraction already spent
func (g *Game) moveExplosions(dt float64) {
	for i := range g.explosions {
		ex := &g.explosions[i]
		ex.Life -= dt
		t := 1 - ex.Life/ex.MaxLife
		ex.Radius = ex.MaxRadius * t
	}
}
