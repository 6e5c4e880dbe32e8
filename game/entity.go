package game

import "image/color"

// Entity colors used by the rendering layer. They travel with the
// records so the renderer never needs to re-derive them.
var (
	colorBullet      = color.RGBA{255, 255, 0, 255}
	colorEnemyBullet = color.RGBA{255, 50, 50, 255}
	colorSpreadShot  = color.RGBA{255, 100, 0, 255}
	colorFire        = color.RGBA{255, 140, 0, 255}
	colorPlayerHit   = color.RGBA{100, 100, 255, 255}
	colorPickup      = color.RGBA{0, 255, 80, 255}
	colorBombBlast   = color.RGBA{160, 32, 240, 255}
)

// Bullet is a straight-flying projectile owned by either faction
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Active bool
	Owner  Faction
	Damage int
	Col    color.RGBA
}

// Missile is a homing projectile. While active it re-steers toward
// the nearest live entity of the opposite faction every frame and
// expires when Life reaches zero.
type Missile struct {
	X, Y             float64
	VX, VY           float64
	TargetX, TargetY float64
	Active           bool
	Owner            Faction
	Damage           int
	Life             float64
}

// Explosion is purely cosmetic; it never collides. Its radius grows
// deterministically from the fraction of life spent.
type Explosion struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      float64
	MaxLife   float64
	Col       color.RGBA
}

// PowerUpKind identifies the one-shot effect a power-up applies
type PowerUpKind int

const (
	PowerUpHeal PowerUpKind = iota
	PowerUpShield
	PowerUpRapidFire
	PowerUpAmmo
	PowerUpBomb

	numPowerUpKinds = 5
)

// String returns the short HUD label for the kind
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHeal:
		return "HP"
	case PowerUpShield:
		return "SH"
	case PowerUpRapidFire:
		return "RF"
	case PowerUpAmmo:
		return "MS"
	case PowerUpBomb:
		return "BM"
	default:
		return "??"
	}
}

// PowerUp drifts down from the top edge and is collected by player
// proximity. Bob drives the cosmetic vertical wobble.
type PowerUp struct {
	X, Y   float64
	VY     float64
	Active bool
	Kind   PowerUpKind
	Bob    float64
}
