package game

// EnemyClass defines the closed set of enemy behaviors
type EnemyClass int

const (
	EnemyBasic EnemyClass = iota
	EnemyFast
	EnemyHeavy
	EnemyBoss
)

// Enemy is a hostile jet descending through the play area. Exactly
// one EnemyBoss may be alive at a time, tracked by the game's
// bossAlive flag.
type Enemy struct {
	X, Y   float64
	VX, VY float64
	Active bool
	HP     int
	MaxHP  int
	Class  EnemyClass

	// ShootTimer counts down to the next shot, then reloads from
	// ShootInterval
	ShootTimer    float64
	ShootInterval float64

	// MoveTimer drives the sinusoidal lateral wobble
	MoveTimer float64

	// Depth is a cosmetic z value used for rendering scale
	Depth float64

	// Score credited to the player on a kill
	Score int
}

// EnemyClassConfig holds the per-class combat stats
type EnemyClassConfig struct {
	Class         EnemyClass
	HP            int
	SpeedX        float64
	SpeedY        float64
	ShootInterval float64
	Score         int

	// HitRadius is the proximity threshold against bullets;
	// MissileHitRadius is the (larger) threshold against missiles
	HitRadius        float64
	MissileHitRadius float64

	// BulletSpeed and BulletDamage describe the enemy's own aimed shot
	BulletSpeed  float64
	BulletDamage int
}

// GetEnemyClassConfig returns the stats for an enemy class
func GetEnemyClassConfig(class EnemyClass) EnemyClassConfig {
	switch class {
	case EnemyBasic:
		return EnemyClassConfig{
			Class:            EnemyBasic,
			HP:               30,
			SpeedX:           60.0,
			SpeedY:           80.0,
			ShootInterval:    1.5,
			Score:            100,
			HitRadius:        30.0,
			MissileHitRadius: 35.0,
			BulletSpeed:      250.0,
			BulletDamage:     10,
		}
	case EnemyFast:
		return EnemyClassConfig{
			Class:            EnemyFast,
			HP:               20,
			SpeedX:           120.0,
			SpeedY:           160.0,
			ShootInterval:    1.0,
			Score:            200,
			HitRadius:        30.0,
			MissileHitRadius: 35.0,
			BulletSpeed:      250.0,
			BulletDamage:     10,
		}
	case EnemyHeavy:
		return EnemyClassConfig{
			Class:            EnemyHeavy,
			HP:               80,
			SpeedX:           40.0,
			SpeedY:           60.0,
			ShootInterval:    0.8,
			Score:            500,
			HitRadius:        30.0,
			MissileHitRadius: 35.0,
			BulletSpeed:      250.0,
			BulletDamage:     10,
		}
	case EnemyBoss:
		return EnemyClassConfig{
			Class:            EnemyBoss,
			HP:               500,
			SpeedX:           100.0,
			SpeedY:           30.0,
			ShootInterval:    0.4,
			Score:            5000,
			HitRadius:        50.0,
			MissileHitRadius: 60.0,
			BulletSpeed:      350.0,
			BulletDamage:     20,
		}
	default:
		return GetEnemyClassConfig(EnemyBasic)
	}
}
