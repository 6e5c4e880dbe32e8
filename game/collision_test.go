package game

import "testing"

// newTestGame creates a deterministic game already in the playing
// mode
func newTestGame(seed int64) *Game {
	cfg := DefaultConfig()
	cfg.Seed = seed
	g := NewGame(cfg)
	g.mode = ModePlaying
	return g
}

// addEnemy appends an idle enemy that will not move or shoot for the
// duration of a short test
func addEnemy(g *Game, class EnemyClass, x, y float64, hp int) *Enemy {
	cfg := GetEnemyClassConfig(class)
	g.enemies = append(g.enemies, Enemy{
		X: x, Y: y,
		Active:        true,
		HP:            hp,
		MaxHP:         hp,
		Class:         class,
		ShootTimer:    1000,
		ShootInterval: 1000,
		Score:         cfg.Score,
	})
	return &g.enemies[len(g.enemies)-1]
}

func TestPlayerHitByBullet(t *testing.T) {
	g := newTestGame(1)
	p := &g.player
	p.ShieldActive = false

	g.spawnBullet(p.X, p.Y, 0, 0, FactionEnemy, colorEnemyBullet, 10)
	g.Step(Input{}, 0.016)

	if p.HP != 90 {
		t.Errorf("expected hp 90 after 10 damage, got %d", p.HP)
	}
	if p.InvTimer <= 0.4 || p.InvTimer > 0.5 {
		t.Errorf("expected ~0.5s invulnerability, got %f", p.InvTimer)
	}

	// A second bullet 0.1s later must not apply while invulnerable
	g.spawnBullet(p.X, p.Y, 0, 0, FactionEnemy, colorEnemyBullet, 10)
	g.Step(Input{}, 0.1)

	if p.HP != 90 {
		t.Errorf("invulnerability should block the second hit, got hp %d", p.HP)
	}
}

func TestPlayerDeathConsumesLife(t *testing.T) {
	g := newTestGame(1)
	p := &g.player
	p.HP = 5
	p.Lives = 2
	p.ShieldActive = false

	g.spawnBullet(p.X, p.Y, 0, 0, FactionEnemy, colorEnemyBullet, 10)
	g.Step(Input{}, 0.016)

	if p.Lives != 1 {
		t.Errorf("expected 1 life left, got %d", p.Lives)
	}
	if p.HP != p.MaxHP {
		t.Errorf("expected hp reset to %d, got %d", p.MaxHP, p.HP)
	}
	if p.InvTimer <= 2.9 {
		t.Errorf("expected 3s respawn invulnerability, got %f", p.InvTimer)
	}
	if g.mode != ModePlaying {
		t.Errorf("run should continue with lives remaining, mode %v", g.mode)
	}
}

func TestPlayerLastLifeEndsRun(t *testing.T) {
	g := newTestGame(1)
	p := &g.player
	p.HP = 5
	p.Lives = 1
	p.Score = 1234
	p.ShieldActive = false

	g.spawnBullet(p.X, p.Y, 0, 0, FactionEnemy, colorEnemyBullet, 10)
	g.Step(Input{}, 0.016)

	if g.mode != ModeGameOver {
		t.Fatalf("expected game over, got mode %v", g.mode)
	}
	if g.highScore != 1234 {
		t.Errorf("expected high score 1234, got %d", g.highScore)
	}
}

func TestShieldAbsorbsWithoutOverflow(t *testing.T) {
	g := newTestGame(1)
	p := &g.player
	p.Shield = 5
	p.ShieldActive = true

	g.damagePlayer(50, 0.5, 25)

	if p.Shield != 0 {
		t.Errorf("expected shield floored at 0, got %d", p.Shield)
	}
	if p.HP != p.MaxHP {
		t.Errorf("shield overflow must not carry into hp: got %d", p.HP)
	}
}

func TestHPAndShieldStayInRange(t *testing.T) {
	g := newTestGame(1)
	p := &g.player

	damages := []int{7, 200, 3, 999, 1}
	for _, d := range damages {
		p.InvTimer = 0
		p.ShieldActive = d%2 == 0
		g.damagePlayer(d, 0.5, 25)
		if p.HP < 0 || p.HP > p.MaxHP {
			t.Fatalf("hp out of range after %d damage: %d", d, p.HP)
		}
		if p.Shield < 0 || p.Shield > p.MaxShield {
			t.Fatalf("shield out of range after %d damage: %d", d, p.Shield)
		}
	}
}

func TestEnemyTakesMultipleHitsSameFrame(t *testing.T) {
	g := newTestGame(1)
	e := addEnemy(g, EnemyBasic, 300, 300, 30)

	// Two bullets hit in the same frame: both apply
	g.spawnBullet(300, 300, 0, 0, FactionPlayer, colorBullet, 10)
	g.spawnBullet(300, 300, 0, 0, FactionPlayer, colorBullet, 10)
	g.Step(Input{}, 0.016)

	if e.HP != 10 {
		t.Errorf("expected hp 10 after two hits, got %d", e.HP)
	}
	if !e.Active {
		t.Error("enemy should survive at hp 10")
	}

	kills := g.player.Kills
	g.spawnBullet(e.X, e.Y, 0, 0, FactionPlayer, colorBullet, 10)
	g.Step(Input{}, 0.016)

	if len(g.enemies) != 0 {
		t.Errorf("dead enemy should be compacted away, %d remain", len(g.enemies))
	}
	if g.player.Kills != kills+1 {
		t.Errorf("expected kill count %d, got %d", kills+1, g.player.Kills)
	}
	if g.combo != 1 {
		t.Errorf("expected combo 1 after kill, got %d", g.combo)
	}
	if g.player.Score != GetEnemyClassConfig(EnemyBasic).Score {
		t.Errorf("expected score %d, got %d", GetEnemyClassConfig(EnemyBasic).Score, g.player.Score)
	}
}

func TestComboMultiplierScoring(t *testing.T) {
	g := newTestGame(1)
	g.combo = 7
	g.comboTimer = comboWindow
	e := addEnemy(g, EnemyBasic, 300, 300, 10)

	g.damageEnemy(e, 10, hitBullet, e.X, e.Y)

	// 100 * (1 + 7/5) with integer division = 200
	if g.player.Score != 200 {
		t.Errorf("expected combo-scaled score 200, got %d", g.player.Score)
	}
	if g.combo != 8 {
		t.Errorf("expected combo 8, got %d", g.combo)
	}
}

func TestMissileKillScoresDouble(t *testing.T) {
	g := newTestGame(1)
	e := addEnemy(g, EnemyFast, 300, 300, 10)

	g.damageEnemy(e, 50, hitMissile, e.X, e.Y)

	if g.player.Score != 2*GetEnemyClassConfig(EnemyFast).Score {
		t.Errorf("expected double score %d, got %d", 2*GetEnemyClassConfig(EnemyFast).Score, g.player.Score)
	}
}

func TestComboDecaysAfterWindow(t *testing.T) {
	g := newTestGame(1)
	g.combo = 3
	g.comboTimer = comboWindow

	// Within the window the combo holds
	for g.gameTime < 1.0 {
		g.Step(Input{}, 0.05)
	}
	if g.combo != 3 {
		t.Fatalf("combo should persist while the window is open, got %d", g.combo)
	}

	for g.gameTime < 2.2 {
		g.Step(Input{}, 0.05)
	}
	if g.combo != 0 {
		t.Errorf("combo should reset to 0 after the window lapses, got %d", g.combo)
	}
}

func TestBombPartialKills(t *testing.T) {
	g := newTestGame(1)
	addEnemy(g, EnemyBasic, 100, 300, 50)
	addEnemy(g, EnemyBasic, 300, 300, 100)
	addEnemy(g, EnemyHeavy, 500, 300, 200)
	for i := range g.enemies {
		g.enemies[i].VY = 0
	}
	g.player.Bombs = 2

	g.Step(Input{Bomb: true}, 0.016)

	if g.player.Bombs != 1 {
		t.Errorf("expected 1 bomb left, got %d", g.player.Bombs)
	}
	if len(g.enemies) != 1 {
		t.Fatalf("expected exactly one survivor, got %d", len(g.enemies))
	}
	if g.enemies[0].HP != 50 {
		t.Errorf("survivor should keep 200-150=50 hp, got %d", g.enemies[0].HP)
	}
	wantScore := GetEnemyClassConfig(EnemyBasic).Score * 2
	if g.player.Score != wantScore {
		t.Errorf("expected flat bomb score %d, got %d", wantScore, g.player.Score)
	}
	if g.player.Kills != 2 {
		t.Errorf("expected 2 kills, got %d", g.player.Kills)
	}
}

func TestBombWithoutAmmoIsNoOp(t *testing.T) {
	g := newTestGame(1)
	addEnemy(g, EnemyBasic, 300, 300, 30)
	g.enemies[0].VY = 0
	g.player.Bombs = 0

	g.Step(Input{Bomb: true}, 0.016)

	if g.player.Bombs != 0 {
		t.Errorf("bomb count must stay 0, got %d", g.player.Bombs)
	}
	if len(g.enemies) != 1 || g.enemies[0].HP != 30 {
		t.Error("no enemy may be affected without a bomb")
	}
}

func TestBossKillClearsFlagAndAdvancesLevel(t *testing.T) {
	g := newTestGame(1)
	g.bossAlive = true
	e := addEnemy(g, EnemyBoss, 360, 150, 10)

	g.damageEnemy(e, 10, hitBullet, e.X, e.Y)
	g.updateDerived()

	if g.bossAlive {
		t.Error("boss flag should clear on boss death")
	}
	if g.player.Level != 2 {
		t.Errorf("expected level 2 after boss kill, got %d", g.player.Level)
	}
}

func TestPowerUpPickup(t *testing.T) {
	g := newTestGame(1)
	p := &g.player
	p.HP = 40
	g.powerups = append(g.powerups, PowerUp{X: p.X, Y: p.Y, Active: true, Kind: PowerUpHeal})

	g.Step(Input{}, 0.016)

	if p.HP != 70 {
		t.Errorf("expected hp 70 after heal pickup, got %d", p.HP)
	}
	if p.Score != pickupScore {
		t.Errorf("expected pickup score %d, got %d", pickupScore, p.Score)
	}
	if len(g.powerups) != 0 {
		t.Errorf("collected power-up should be compacted away, %d remain", len(g.powerups))
	}
}

func TestPowerUpEffectsClamp(t *testing.T) {
	g := newTestGame(1)
	p := &g.player
	p.HP = p.MaxHP
	g.powerups = append(g.powerups,
		PowerUp{X: p.X, Y: p.Y, Active: true, Kind: PowerUpHeal},
		PowerUp{X: p.X, Y: p.Y, Active: true, Kind: PowerUpShield},
		PowerUp{X: p.X, Y: p.Y, Active: true, Kind: PowerUpBomb},
	)

	g.Step(Input{}, 0.016)

	if p.HP != p.MaxHP {
		t.Errorf("heal must cap at max hp, got %d", p.HP)
	}
	if p.Shield != p.MaxShield {
		t.Errorf("shield must cap at max, got %d", p.Shield)
	}
	if !p.ShieldActive || p.ShieldTimer != shieldDuration {
		t.Error("shield pickup should arm the shield")
	}
	if p.Bombs != playerBombs+1 {
		t.Errorf("expected %d bombs, got %d", playerBombs+1, p.Bombs)
	}
}

func TestSpawnedEntitiesWaitOneFrame(t *testing.T) {
	g := newTestGame(1)
	p := &g.player
	// Enemy on top of the player fires immediately; the bullet spawns
	// mid-frame and must not resolve until the next frame
	e := addEnemy(g, EnemyBasic, p.X, p.Y, 30)
	e.VY = 0
	e.ShootTimer = 0.001
	e.ShootInterval = 1000

	g.Step(Input{}, 0.016)
	if p.HP != p.MaxHP {
		t.Fatalf("bullet spawned this frame must not hit yet, hp %d", p.HP)
	}
	if len(g.bullets) == 0 {
		t.Fatal("enemy should have fired")
	}

	g.Step(Input{}, 0.016)
	if p.HP == p.MaxHP {
		t.Error("bullet should hit on the following frame")
	}
}
