package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/kiln/engine/containers"
	"github.com/spaghettifunk/kiln/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// EVENT_QUEUE_SIZE bounds the events buffered between two PumpEvents calls.
const EVENT_QUEUE_SIZE int = 512

type WindowConfig struct {
	Title  string
	X      int
	Y      int
	Width  int
	Height int
	VSync  bool
}

// Surface is the window as seen by the event loop.
type Surface interface {
	// Resume makes the graphics context current on the calling thread.
	Resume() error
	// Suspend releases the graphics context.
	Suspend() error
	Resize(width, height uint32)
	SwapBuffers()
	// PumpEvents polls the platform and returns the events received since
	// the previous call, oldest first.
	PumpEvents() []core.WindowEvent
	ShouldClose() bool
}

// Platform is a glfw window with an OpenGL 4.1 core context.
type Platform struct {
	Window *glfw.Window

	config  WindowConfig
	events  *containers.RingQueue[core.WindowEvent]
	dropped int
	resumed bool
}

func New(cfg WindowConfig) (*Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw: %s", core.ErrNoGraphicsContext, err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %s", core.ErrNoGraphicsContext, err)
	}

	p := &Platform{
		Window: window,
		config: cfg,
		events: containers.NewRingQueue[core.WindowEvent](EVENT_QUEUE_SIZE),
	}
	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetCursorPosCallback(p.cursorPosCallback)
	p.Window.SetCursorEnterCallback(p.cursorEnterCallback)
	p.Window.SetScrollCallback(p.scrollCallback)
	p.Window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	p.Window.SetFocusCallback(p.focusCallback)
	p.Window.SetCloseCallback(p.closeCallback)
	p.Window.SetPos(cfg.X, cfg.Y)
	p.Window.Show()

	core.LogInfo("window %q created (%dx%d)", cfg.Title, cfg.Width, cfg.Height)
	return p, nil
}

func (p *Platform) Resume() error {
	if p.resumed {
		return nil
	}
	p.Window.MakeContextCurrent()
	p.resumed = true
	if p.config.VSync {
		if err := setSwapInterval(1); err != nil {
			core.LogWarn("vsync unavailable, continuing without it: %s", err)
		}
	}
	return nil
}

// setSwapInterval turns the panic glfw raises on failure into an error.
func setSwapInterval(interval int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	glfw.SwapInterval(interval)
	return nil
}

func (p *Platform) Suspend() error {
	if !p.resumed {
		return nil
	}
	glfw.DetachCurrentContext()
	p.resumed = false
	return nil
}

// Resize is a no-op for glfw, which resizes the default framebuffer with the
// window.
func (p *Platform) Resize(width, height uint32) {}

func (p *Platform) FramebufferSize() (uint32, uint32) {
	w, h := p.Window.GetFramebufferSize()
	return uint32(w), uint32(h)
}

func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

func (p *Platform) PumpEvents() []core.WindowEvent {
	glfw.PollEvents()
	if p.dropped > 0 {
		core.LogWarn("window event queue full, dropped the %d oldest events", p.dropped)
		p.dropped = 0
	}
	return p.events.Drain()
}

func (p *Platform) ShouldClose() bool {
	return p.Window.ShouldClose()
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

func (p *Platform) push(ev core.WindowEvent) {
	if p.events.Push(ev) {
		p.dropped++
	}
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code, ok := translateKey(key)
	if !ok {
		return
	}
	var state core.ElementState
	switch action {
	case glfw.Press:
		state = core.Pressed
	case glfw.Release:
		state = core.Released
	default:
		state = core.Repeat
	}
	p.push(core.KeyboardInput{Key: uint16(code), State: state})
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.push(core.CursorMoved{X: xpos, Y: ypos})
}

func (p *Platform) cursorEnterCallback(w *glfw.Window, entered bool) {
	if entered {
		p.push(core.CursorEntered{})
	} else {
		p.push(core.CursorLeft{})
	}
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.push(core.MouseWheel{DeltaX: xoff, DeltaY: yoff})
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	p.push(core.Resized{Width: uint32(width), Height: uint32(height)})
}

func (p *Platform) focusCallback(w *glfw.Window, focused bool) {
	p.push(core.Focused{Focused: focused})
}

func (p *Platform) closeCallback(w *glfw.Window) {
	p.push(core.CloseRequested{})
}
