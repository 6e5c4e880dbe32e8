package game

// Input is the abstract per-frame input contract. The host translates
// raw touch/mouse/keyboard events into one Input value before each
// Step; the simulation never reads devices itself.
//
// Dragging and Fire are level inputs (true while held, gated by the
// gun cooldown); Missile, Bomb, Pause and Interact are one-shot
// triggers, true only on the frame the action was requested.
type Input struct {
	// PointerX, PointerY is the active pointer position in play-area
	// coordinates
	PointerX, PointerY float64

	// Dragging is true while the pointer is held down inside the play
	// area; the craft eases toward the pointer and auto-fires
	Dragging bool

	Fire     bool
	Missile  bool
	Bomb     bool
	Pause    bool
	Interact bool
}
