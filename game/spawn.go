package game

import "math"

// Spawn scheduling constants. The enemy interval shrinks linearly
// with elapsed time down to a floor; the class mix widens at two time
// thresholds; the boss appears once past bossTime.
const (
	baseSpawnInterval = 2.0
	minSpawnInterval  = 0.5
	spawnRamp         = 0.02

	powerUpInterval = 12.0

	midMixTime  = 30.0
	lateMixTime = 60.0
	bossTime    = 90.0
)

// SpawnDirector decides once per frame whether to emit a new enemy
// and, independently, whether to emit a power-up. It never blocks and
// never fails; its only side effect is appending to the game's pools.
type SpawnDirector struct {
	enemyTimer   float64
	powerUpTimer float64

	// bossSpawned makes the boss trigger fire at most once per run
	bossSpawned bool
}

// Update accumulates frame time into the director's timers and emits
// spawns when they fire. Regular spawning is suppressed while a boss
// is alive.
func (d *SpawnDirector) Update(g *Game, dt float64) {
	d.enemyTimer += dt
	interval := math.Max(minSpawnInterval, baseSpawnInterval-g.gameTime*spawnRamp)
	if d.enemyTimer >= interval {
		d.enemyTimer = 0
		if !g.bossAlive {
			g.spawnEnemy(d.pickClass(g))
		}
	}

	if g.gameTime > bossTime && !g.bossAlive && !d.bossSpawned {
		d.bossSpawned = true
		g.bossAlive = true
		g.spawnEnemy(EnemyBoss)
	}

	d.powerUpTimer += dt
	if d.powerUpTimer > powerUpInterval {
		d.powerUpTimer = 0
		w := float64(g.cfg.ScreenWidth)
		g.spawnPowerUp(60+g.rng.Float64()*(w-120), -50)
	}
}

// pickClass chooses an enemy class with a mix that widens over time:
// basic only at first, then fast, then heavy
func (d *SpawnDirector) pickClass(g *Game) EnemyClass {
	switch {
	case g.gameTime > lateMixTime:
		return EnemyClass(g.rng.Intn(3))
	case g.gameTime > midMixTime:
		return EnemyClass(g.rng.Intn(2))
	default:
		return EnemyBasic
	}
}
