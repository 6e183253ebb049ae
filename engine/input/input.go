package input

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Input is the snapshot of one batch of window events. It is published as an
// InputEvent only when something changed.
type Input struct {
	// HasCursor is set when the cursor moved during the batch. Cursor and
	// PrevCursor are meaningful only then.
	HasCursor  bool
	Cursor     mgl32.Vec2
	PrevCursor mgl32.Vec2
	// CursorDelta is the summed movement of the batch.
	CursorDelta mgl32.Vec2
	// Scroll is the summed vertical wheel movement, in lines or pixels
	// depending on the device.
	Scroll   float32
	Pressed  []KeyCode
	Released []KeyCode
}

func (in Input) JustPressed(key KeyCode) bool {
	return slices.Contains(in.Pressed, key)
}

func (in Input) JustReleased(key KeyCode) bool {
	return slices.Contains(in.Released, key)
}

// InputEvent carries an Input snapshot through ecs.Events.
type InputEvent struct {
	Input
}
