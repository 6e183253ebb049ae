package input

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
)

func newInputWorld(t *testing.T, releaseOnFocusLoss bool) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	for _, res := range []any{NewStates(), NewBridge(releaseOnFocusLoss), ecs.NewEvents[InputEvent]()} {
		if err := w.InsertResource(res); err != nil {
			t.Fatalf("InsertResource: %v", err)
		}
	}
	return w
}

func key(k KeyCode, state core.ElementState) core.KeyboardInput {
	return core.KeyboardInput{Key: uint16(k), State: state}
}

// process runs one batch and returns the published snapshot, if any.
func process(t *testing.T, w *ecs.World, reader *ecs.EventReader[InputEvent], events ...core.WindowEvent) (Input, bool) {
	t.Helper()
	sent, err := ProcessEvents(w, events)
	if err != nil {
		t.Fatalf("ProcessEvents: %v", err)
	}
	got := reader.Read(ecs.MustResource[*ecs.Events[InputEvent]](w))
	if !sent {
		if len(got) != 0 {
			t.Fatalf("nothing flushed but %d events readable", len(got))
		}
		return Input{}, false
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 input event, got %d", len(got))
	}
	return got[0].Input, true
}

func TestHeldKeys(t *testing.T) {
	w := newInputWorld(t, false)
	reader := ecs.NewEventReader[InputEvent]()

	in, ok := process(t, w, reader,
		key(KEY_W, core.Pressed),
		key(KEY_A, core.Pressed),
		key(KEY_W, core.Released),
	)
	if !ok {
		t.Fatal("expected a snapshot")
	}
	states := ecs.MustResource[*States](w)
	if held := states.Held(); !slices.Equal(held, []KeyCode{KEY_A}) {
		t.Errorf("held = %v, want [A]", held)
	}
	if !slices.Equal(in.Pressed, []KeyCode{KEY_A, KEY_W}) {
		t.Errorf("pressed = %v, want [A W]", in.Pressed)
	}
	if !in.JustReleased(KEY_W) || in.JustReleased(KEY_A) {
		t.Errorf("released = %v, want [W]", in.Released)
	}
}

func TestKeyTransitions(t *testing.T) {
	tests := []struct {
		name    string
		events  []core.WindowEvent
		held    []KeyCode
		changed bool
	}{
		{"repeat ignored", []core.WindowEvent{key(KEY_SPACE, core.Repeat)}, []KeyCode{}, false},
		{"release of up key ignored", []core.WindowEvent{key(KEY_SPACE, core.Released)}, []KeyCode{}, false},
		{"double press held once", []core.WindowEvent{key(KEY_SPACE, core.Pressed), key(KEY_SPACE, core.Pressed)}, []KeyCode{KEY_SPACE}, true},
		{"press then release", []core.WindowEvent{key(KEY_SPACE, core.Pressed), key(KEY_SPACE, core.Released)}, []KeyCode{}, true},
		{"out of range key", []core.WindowEvent{core.KeyboardInput{Key: 0x1FF, State: core.Pressed}}, []KeyCode{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newInputWorld(t, false)
			_, changed := process(t, w, ecs.NewEventReader[InputEvent](), tt.events...)
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
			if held := ecs.MustResource[*States](w).Held(); !slices.Equal(held, tt.held) {
				t.Errorf("held = %v, want %v", held, tt.held)
			}
		})
	}
}

func TestCursorDelta(t *testing.T) {
	w := newInputWorld(t, false)
	reader := ecs.NewEventReader[InputEvent]()

	// The first move ever has no delta.
	in, _ := process(t, w, reader, core.CursorMoved{X: 100, Y: 50})
	if in.CursorDelta != (mgl32.Vec2{}) {
		t.Errorf("first move delta = %v, want zero", in.CursorDelta)
	}

	in, _ = process(t, w, reader, core.CursorMoved{X: 110, Y: 45}, core.CursorMoved{X: 115, Y: 40})
	if want := (mgl32.Vec2{15, -10}); in.CursorDelta != want {
		t.Errorf("batch delta = %v, want %v", in.CursorDelta, want)
	}
	if want := (mgl32.Vec2{100, 50}); in.PrevCursor != want {
		t.Errorf("prev cursor = %v, want %v", in.PrevCursor, want)
	}
	if want := (mgl32.Vec2{115, 40}); !in.HasCursor || in.Cursor != want {
		t.Errorf("cursor = %v, want %v", in.Cursor, want)
	}

	// Re-entering the window resets the reference point.
	in, _ = process(t, w, reader, core.CursorEntered{}, core.CursorMoved{X: 400, Y: 300})
	if in.CursorDelta != (mgl32.Vec2{}) {
		t.Errorf("delta after enter = %v, want zero", in.CursorDelta)
	}
	if got := ecs.MustResource[*States](w).Cursor(); got != (mgl32.Vec2{400, 300}) {
		t.Errorf("stored cursor = %v", got)
	}
}

func TestScrollSummed(t *testing.T) {
	w := newInputWorld(t, false)
	in, ok := process(t, w, ecs.NewEventReader[InputEvent](),
		core.MouseWheel{DeltaY: 1},
		core.MouseWheel{DeltaY: 2.5, Pixels: true},
	)
	if !ok || in.Scroll != 3.5 {
		t.Errorf("scroll = %v (sent %v), want 3.5", in.Scroll, ok)
	}
}

func TestNoEventWhenUnchanged(t *testing.T) {
	w := newInputWorld(t, false)
	_, ok := process(t, w, ecs.NewEventReader[InputEvent](),
		core.Resized{Width: 800, Height: 600},
		core.CursorLeft{},
		core.Focused{Focused: true},
	)
	if ok {
		t.Error("unrelated events produced an input snapshot")
	}
	if n := ecs.MustResource[*ecs.Events[InputEvent]](w).Len(); n != 0 {
		t.Errorf("%d input events queued", n)
	}
}

func TestFocusLoss(t *testing.T) {
	t.Run("keys stay held by default", func(t *testing.T) {
		w := newInputWorld(t, false)
		reader := ecs.NewEventReader[InputEvent]()
		process(t, w, reader, key(KEY_W, core.Pressed))
		if _, ok := process(t, w, reader, core.Focused{Focused: false}); ok {
			t.Error("focus loss produced a snapshot")
		}
		if !ecs.MustResource[*States](w).IsHeld(KEY_W) {
			t.Error("W released on focus loss")
		}
	})

	t.Run("release on focus loss", func(t *testing.T) {
		w := newInputWorld(t, true)
		reader := ecs.NewEventReader[InputEvent]()
		process(t, w, reader, key(KEY_W, core.Pressed), key(KEY_D, core.Pressed))
		in, ok := process(t, w, reader, core.Focused{Focused: false})
		if !ok {
			t.Fatal("expected a snapshot")
		}
		if !slices.Equal(in.Released, []KeyCode{KEY_D, KEY_W}) {
			t.Errorf("released = %v, want [D W]", in.Released)
		}
		if held := ecs.MustResource[*States](w).Held(); len(held) != 0 {
			t.Errorf("held = %v, want none", held)
		}
	})
}

func TestProcessEventsRequiresStates(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := ProcessEvents(w, nil); err == nil {
		t.Fatal("expected an error without States")
	}
}

func TestKeyCodeString(t *testing.T) {
	if got := KEY_W.String(); got != "W" {
		t.Errorf("KEY_W = %q", got)
	}
	if got := KeyCode(0x07).String(); got != "Key(0x07)" {
		t.Errorf("unknown key = %q", got)
	}
	if KeyCode(0x07).Valid() || !KEY_ESCAPE.Valid() {
		t.Error("Valid mismatch")
	}
}
