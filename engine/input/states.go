package input

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// States is the persistent input state kept in the World between frames:
// the set of held keys and the last known cursor position.
type States struct {
	firstMouse bool
	cursor     mgl32.Vec2
	held       [KEYS_MAX_KEYS]bool
	heldCount  int
}

func NewStates() *States {
	return &States{firstMouse: true}
}

// IsHeld reports whether key was pressed and not yet released.
func (s *States) IsHeld(key KeyCode) bool {
	if int(key) >= KEYS_MAX_KEYS {
		return false
	}
	return s.held[key]
}

// Held returns the held keys in ascending key code order.
func (s *States) Held() []KeyCode {
	out := make([]KeyCode, 0, s.heldCount)
	for k, down := range s.held {
		if down {
			out = append(out, KeyCode(k))
		}
	}
	return out
}

// Cursor returns the last cursor position seen by the bridge.
func (s *States) Cursor() mgl32.Vec2 {
	return s.cursor
}

// press marks key as held. It returns false if the key was already held.
func (s *States) press(key KeyCode) bool {
	if int(key) >= KEYS_MAX_KEYS || s.held[key] {
		return false
	}
	s.held[key] = true
	s.heldCount++
	return true
}

// release marks key as up. It returns false if the key was not held.
func (s *States) release(key KeyCode) bool {
	if int(key) >= KEYS_MAX_KEYS || !s.held[key] {
		return false
	}
	s.held[key] = false
	s.heldCount--
	return true
}

// ReleaseAll clears every held key and returns the keys that were held.
func (s *States) ReleaseAll() []KeyCode {
	released := s.Held()
	for _, k := range released {
		s.release(k)
	}
	return released
}

// moveCursor records a new cursor position and returns the movement since the
// previous one. The first move after the cursor entered the window has no
// movement.
func (s *States) moveCursor(pos mgl32.Vec2) (prev mgl32.Vec2) {
	if s.firstMouse {
		s.firstMouse = false
		s.cursor = pos
	}
	prev = s.cursor
	s.cursor = pos
	return prev
}

func (s *States) cursorEntered() {
	s.firstMouse = true
}

// sortedKeys returns the keys of a key set in ascending order.
func sortedKeys(set map[KeyCode]struct{}) []KeyCode {
	if len(set) == 0 {
		return nil
	}
	out := make([]KeyCode, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
