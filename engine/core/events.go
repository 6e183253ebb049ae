package core

// WindowEvent is a raw event produced by the windowing layer. The platform
// translates its native callbacks into these values; the input bridge and the
// runner consume them.
type WindowEvent interface {
	isWindowEvent()
}

type ElementState uint8

const (
	Pressed ElementState = iota
	Released
	// Repeat is sent while a key is held down. It carries no new state.
	Repeat
)

func (s ElementState) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	case Repeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}

// Resized carries the new framebuffer size. A zero dimension means the window
// was minimised.
type Resized struct {
	Width  uint32
	Height uint32
}

type CloseRequested struct{}

// KeyboardInput reports a key transition. Key is the engine key code, see the
// input package for the table.
type KeyboardInput struct {
	Key   uint16
	State ElementState
}

type CursorMoved struct {
	X float64
	Y float64
}

// MouseWheel carries a scroll amount either in lines or in pixels.
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
	Pixels bool
}

type CursorEntered struct{}

type CursorLeft struct{}

// Focused reports a change of keyboard focus. Platforms do not deliver
// release events for keys held while focus is lost.
type Focused struct {
	Focused bool
}

func (Resized) isWindowEvent()        {}
func (CloseRequested) isWindowEvent() {}
func (KeyboardInput) isWindowEvent()  {}
func (CursorMoved) isWindowEvent()    {}
func (MouseWheel) isWindowEvent()     {}
func (CursorEntered) isWindowEvent()  {}
func (CursorLeft) isWindowEvent()     {}
func (Focused) isWindowEvent()        {}
