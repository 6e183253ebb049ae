package input

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
)

// Bridge turns raw window events into input snapshots. Events handled between
// two flushes are merged into one snapshot.
type Bridge struct {
	// ReleaseOnFocusLoss releases every held key when the window loses focus.
	// Without it keys held while focus is lost stay held until the platform
	// reports their release.
	ReleaseOnFocusLoss bool

	snapshot Input
	pressed  map[KeyCode]struct{}
	released map[KeyCode]struct{}
	changed  bool
}

func NewBridge(releaseOnFocusLoss bool) *Bridge {
	return &Bridge{
		ReleaseOnFocusLoss: releaseOnFocusLoss,
		pressed:            make(map[KeyCode]struct{}),
		released:           make(map[KeyCode]struct{}),
	}
}

// Handle folds ev into the pending snapshot and updates states. It reports
// whether the event changed any input.
func (b *Bridge) Handle(states *States, ev core.WindowEvent) bool {
	changed := false
	switch e := ev.(type) {
	case core.CursorMoved:
		pos := mgl32.Vec2{float32(e.X), float32(e.Y)}
		prev := states.moveCursor(pos)
		if !b.snapshot.HasCursor {
			b.snapshot.PrevCursor = prev
		}
		b.snapshot.HasCursor = true
		b.snapshot.Cursor = pos
		b.snapshot.CursorDelta = b.snapshot.CursorDelta.Add(pos.Sub(prev))
		changed = true
	case core.CursorEntered:
		states.cursorEntered()
		changed = true
	case core.MouseWheel:
		b.snapshot.Scroll += float32(e.DeltaY)
		changed = true
	case core.KeyboardInput:
		key := KeyCode(e.Key)
		switch e.State {
		case core.Pressed:
			if states.press(key) {
				b.pressed[key] = struct{}{}
				changed = true
			}
		case core.Released:
			if states.release(key) {
				b.released[key] = struct{}{}
				changed = true
			}
		}
	case core.Focused:
		if !e.Focused && b.ReleaseOnFocusLoss {
			for _, key := range states.ReleaseAll() {
				b.released[key] = struct{}{}
				changed = true
			}
		}
	}
	if changed {
		b.changed = true
	}
	return changed
}

// Pending reports whether the next Flush will publish a snapshot.
func (b *Bridge) Pending() bool {
	return b.changed
}

// Flush publishes the pending snapshot as an InputEvent and starts a new one.
// Nothing is sent when no handled event changed the input.
func (b *Bridge) Flush(w *ecs.World) (bool, error) {
	if !b.changed {
		return false, nil
	}
	snapshot := b.snapshot
	snapshot.Pressed = sortedKeys(b.pressed)
	snapshot.Released = sortedKeys(b.released)
	b.reset()
	if err := ecs.Send(w, InputEvent{Input: snapshot}); err != nil {
		return false, err
	}
	return true, nil
}

func (b *Bridge) reset() {
	b.snapshot = Input{}
	clear(b.pressed)
	clear(b.released)
	b.changed = false
}

// ProcessEvents runs a batch of window events through the Bridge and States
// resources of w and flushes the result. A World without a Bridge resource
// gets a default one.
func ProcessEvents(w *ecs.World, events []core.WindowEvent) (bool, error) {
	states, err := ecs.BorrowMut[*States](w)
	if err != nil {
		return false, err
	}
	defer states.Release()

	bridge, err := ecs.Resource[*Bridge](w)
	if err != nil {
		bridge = NewBridge(false)
		if err := w.InsertResource(bridge); err != nil {
			return false, err
		}
	}
	for _, ev := range events {
		bridge.Handle(states.Get(), ev)
	}
	return bridge.Flush(w)
}
