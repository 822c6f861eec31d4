// Package frame drives the per-tick update of a spinning mesh view: it
// tracks held keys, advances the rotation and camera distance, runs the
// render pipeline and hands the result to a sink.
package frame

// KeyState is the per-key state machine. A key is active from the tick it
// goes down until the first tick after it comes back up. A press released
// before any tick has seen it still takes effect once.
type KeyState uint8

const (
	Up KeyState = iota
	Pressed
	Held
	Released
)

func (k KeyState) String() string {
	switch k {
	case Up:
		return "up"
	case Pressed:
		return "pressed"
	case Held:
		return "held"
	case Released:
		return "released"
	}
	return "unknown"
}

// Down returns the state after a key-down event.
func (k KeyState) Down() KeyState {
	return Pressed
}

// Release returns the state after a key-up event.
func (k KeyState) Release() KeyState {
	switch k {
	case Pressed, Released:
		return Released
	default:
		return Up
	}
}

// Active reports whether the key counts as held this tick.
func (k KeyState) Active() bool {
	return k != Up
}

// Step returns the state at the end of a tick.
func (k KeyState) Step() KeyState {
	switch k {
	case Pressed, Held:
		return Held
	default:
		return Up
	}
}

// Key names one input channel.
type Key int

const (
	KeyQuit Key = iota
	KeyCloser
	KeyFarther
	numKeys
)

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyCloser:
		return "closer"
	case KeyFarther:
		return "farther"
	}
	return "unknown"
}

// Input holds one state machine per Key.
//
// Terminals seldom report key releases, so with AutoRelease > 0 a key that
// has not been pressed again for that many ticks releases itself. Held keys
// keep it alive through auto-repeat.
type Input struct {
	AutoRelease int

	state [numKeys]KeyState
	idle  [numKeys]int
}

// Press records a key-down event.
func (in *Input) Press(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	in.state[k] = in.state[k].Down()
	in.idle[k] = 0
}

// Release records a key-up event.
func (in *Input) Release(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	in.state[k] = in.state[k].Release()
}

// Active reports whether k is in effect this tick.
func (in *Input) Active(k Key) bool {
	if k < 0 || k >= numKeys {
		return false
	}
	return in.state[k].Active()
}

// State returns the raw state of k.
func (in *Input) State(k Key) KeyState {
	if k < 0 || k >= numKeys {
		return Up
	}
	return in.state[k]
}

// Step ends the tick for every key.
func (in *Input) Step() {
	for k := range in.state {
		in.state[k] = in.state[k].Step()
		if in.AutoRelease <= 0 || in.state[k] != Held {
			continue
		}
		in.idle[k]++
		if in.idle[k] >= in.AutoRelease {
			in.state[k] = in.state[k].Release()
		}
	}
}
