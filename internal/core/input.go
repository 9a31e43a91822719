package core

// Key is a canonicalized input key, abstracted from physical key presses.
// Front-ends reduce keyboard/mouse state to these before each step.
type Key int

const (
	KeyNone    Key = iota
	KeyLeft        // A, Left arrow
	KeyRight       // D, Right arrow
	KeyUp          // W, Up arrow - jump
	KeyDown        // S, Down arrow - crouch
	KeyRoll        // Space - roll modifier
	KeyShoot       // X - shoot toward facing side
	KeyPause       // P, Escape
	KeyRestart     // R - restart run
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyRoll:
		return "Roll"
	case KeyShoot:
		return "Shoot"
	case KeyPause:
		return "Pause"
	case KeyRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for a single simulation step: the set of
// held keys plus an optional world-space point to shoot at.
type InputFrame struct {
	// Keys maps keys to whether they are held during this frame.
	Keys map[Key]bool

	// ShootTarget is non-nil when a shoot action targets a point
	// (mouse click). KeyShoot without a target aims ahead of the player.
	ShootTarget *Vec
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys: make(map[Key]bool),
	}
}

// Set marks a key as held for this frame.
func (f *InputFrame) Set(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// Has returns true if the given key is held this frame.
func (f InputFrame) Has(k Key) bool {
	if f.Keys == nil {
		return false
	}
	return f.Keys[k]
}

// ShootAt requests a shot toward the given world point.
func (f *InputFrame) ShootAt(x, y float64) {
	f.ShootTarget = &Vec{X: x, Y: y}
}

// Clear resets all keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Keys {
		delete(f.Keys, k)
	}
	f.ShootTarget = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Keys {
		clone.Keys[k] = v
	}
	if f.ShootTarget != nil {
		t := *f.ShootTarget
		clone.ShootTarget = &t
	}
	return clone
}
