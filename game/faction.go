package game

// Faction represents which side an entity belongs to. Projectiles and
// homing missiles only damage the opposite faction.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// Opposite returns the opposing faction for targeting purposes
func (f Faction) Opposite() Faction {
	if f == FactionPlayer {
		return FactionEnemy
	}
	return FactionPlayer
}

// String returns the faction name
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
