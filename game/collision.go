package game

// hitKind distinguishes the combat rules applied on an enemy kill:
// bullet kills score with the combo multiplier, missile kills score
// double, bomb kills score flat
type hitKind int

const (
	hitBullet hitKind = iota
	hitMissile
	hitBomb
)

// resolveCollisions runs the frame's pairwise proximity tests:
// bullets first, then missiles, then power-up pickup. Only entities
// that existed at the start of the frame (below the frame marks)
// participate.
func (g *Game) resolveCollisions() {
	g.resolveBullets()
	g.resolveMissiles()
	g.collectPowerUps()
}

// resolveBullets tests every live bullet against the opposing
// faction: player bullets against enemies, enemy bullets against the
// player
func (g *Game) resolveBullets() {
	for i := range g.bullets[:g.marks.bullets] {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}

		if b.Owner == FactionPlayer {
			for j := range g.enemies[:g.marks.enemies] {
				e := &g.enemies[j]
				if !e.Active {
					continue
				}
				if Dist(b.X, b.Y, e.X, e.Y) < GetEnemyClassConfig(e.Class).HitRadius {
					b.Active = false
					g.damageEnemy(e, b.Damage, hitBullet, b.X, b.Y)
					break
				}
			}
			continue
		}

		p := &g.player
		if p.InvTimer <= 0 && Dist(b.X, b.Y, p.X, p.Y) < playerHitRadius {
			b.Active = false
			g.damagePlayer(b.Damage, 0.5, 25)
		}
	}
}

// resolveMissiles tests live missiles against the opposing faction
// using the larger missile hit radii
func (g *Game) resolveMissiles() {
	for i := range g.missiles[:g.marks.missiles] {
		m := &g.missiles[i]
		if !m.Active {
			continue
		}

		if m.Owner == FactionPlayer {
			for j := range g.enemies[:g.marks.enemies] {
				e := &g.enemies[j]
				if !e.Active {
					continue
				}
				if Dist(m.X, m.Y, e.X, e.Y) < GetEnemyClassConfig(e.Class).MissileHitRadius {
					m.Active = false
					g.damageEnemy(e, m.Damage, hitMissile, m.X, m.Y)
					break
				}
			}
			continue
		}

		p := &g.player
		if p.InvTimer <= 0 && Dist(m.X, m.Y, p.X, p.Y) < playerMissileHitRadius {
			m.Active = false
			g.damagePlayer(m.Damage, 1.0, 60)
		}
	}
}

// damagePlayer applies a hit to the player. An active shield absorbs
// the damage up to its remaining value; any excess is discarded, not
// carried into hp. Every hit grants a short invulnerability window.
// Reaching zero hp consumes a life, or ends the run on the last one.
func (g *Game) damagePlayer(dmg int, invWindow float64, blastSize float64) {
	p := &g.player
	if p.ShieldActive && p.Shield > 0 {
		p.Shield -= dmg
		if p.Shield < 0 {
			p.Shield = 0
		}
	} else {
		p.HP -= dmg
	}
	p.InvTimer = invWindow
	g.spawnExplosion(p.X, p.Y, blastSize, colorPlayerHit)

	if p.HP <= 0 {
		p.HP = 0
		p.Lives--
		if p.Lives <= 0 {
			p.Lives = 0
			g.endRun()
		} else {
			p.HP = p.MaxHP
			p.InvTimer = respawnInvulnerability
		}
	}
}

// damageEnemy applies a hit to an enemy and, on a kill, credits
// score, kill count and combo, clears the boss flag for a boss kill
// and rolls the power-up drop gate
func (g *Game) damageEnemy(e *Enemy, dmg int, kind hitKind, hitX, hitY float64) {
	e.HP -= dmg

	switch kind {
	case hitBullet:
		g.spawnExplosion(hitX, hitY, 20, colorFire)
	case hitMissile:
		g.spawnExplosion(hitX, hitY, 60, colorFire)
	case hitBomb:
		g.spawnExplosion(e.X, e.Y, 60, colorFire)
	}

	if e.HP > 0 {
		return
	}
	e.HP = 0
	e.Active = false

	switch kind {
	case hitBullet:
		g.player.Score += e.Score * (1 + g.combo/5)
	case hitMissile:
		g.player.Score += e.Score * 2
	case hitBomb:
		g.player.Score += e.Score
	}
	g.player.Kills++
	g.combo++
	g.comboTimer = comboWindow

	if e.Class == EnemyBoss {
		g.bossAlive = false
		g.bossKills++
	}

	if kind != hitBomb {
		size := 50.0
		if e.Class == EnemyBoss {
			size = 120
		}
		g.spawnExplosion(e.X, e.Y, size, colorFire)
	}

	switch kind {
	case hitBullet:
		if g.rng.Intn(3) == 0 {
			g.spawnPowerUp(e.X, e.Y)
		}
	case hitMissile:
		if g.rng.Intn(2) == 0 {
			g.spawnPowerUp(e.X, e.Y)
		}
	}
}

// resolveBomb is the area weapon's damage path: it skips proximity
// testing and applies flat damage to every active enemy, resolving
// kills through the normal death rules, then detonates one large
// cosmetic blast
func (g *Game) resolveBomb() {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		g.damageEnemy(e, bombDamage, hitBomb, e.X, e.Y)
	}

	g.shakeAmt = 20
	g.shakeTimer = 0.5
	g.spawnExplosion(float64(g.cfg.ScreenWidth)/2, float64(g.cfg.PlayHeight())/2, 300, colorBombBlast)
}

// collectPowerUps applies and consumes any power-up within pickup
// range of the player
func (g *Game) collectPowerUps() {
	p := &g.player
	for i := range g.powerups[:g.marks.powerups] {
		pu := &g.powerups[i]
		if !pu.Active {
			continue
		}
		if Dist(pu.X, pu.Y, p.X, p.Y) >= pickupRadius {
			continue
		}
		pu.Active = false
		switch pu.Kind {
		case PowerUpHeal:
			p.HP = min(p.MaxHP, p.HP+healAmount)
		case PowerUpShield:
			p.Shield = min(p.MaxShield, p.Shield+shieldAmount)
			p.ShieldActive = true
			p.ShieldTimer = shieldDuration
		case PowerUpRapidFire:
			p.RapidFire = true
			p.RapidTimer = rapidFireDuration
		case PowerUpAmmo:
			p.Ammo += ammoAmount
		case PowerUpBomb:
			p.Bombs++
		}
		g.spawnExplosion(pu.X, pu.Y, 30, colorPickup)
		p.Score += pickupScore
	}
}
