package platform

import (
	"github.com/spaghettifunk/kiln/engine/app"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
	"github.com/spaghettifunk/kiln/engine/input"
)

// NewRunner returns an app.Runner that opens a glfw window and drives the
// App with Run.
func NewRunner(cfg WindowConfig) app.Runner {
	return func(a *app.App) error {
		p, err := New(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := p.Shutdown(); err != nil {
				core.LogWarn("platform shutdown: %s", err)
			}
		}()

		// HiDPI displays report a framebuffer larger than the window.
		if w, h := p.FramebufferSize(); int(w) != cfg.Width || int(h) != cfg.Height {
			p.push(core.Resized{Width: w, Height: h})
		}
		return Run(a, p)
	}
}

// Run makes the surface current, runs the startup schedules and then one
// frame per batch of window events until the window closes or Escape is
// pressed. Each frame feeds the input bridge, runs Update and Render and
// swaps buffers.
func Run(a *app.App, surface Surface) error {
	if err := surface.Resume(); err != nil {
		return err
	}
	defer surface.Suspend()

	if err := a.Startup(); err != nil {
		return err
	}

	w := a.World()
	for !surface.ShouldClose() {
		events := surface.PumpEvents()
		if dispatch(w, surface, events) {
			core.LogInfo("window closed, leaving event loop")
			return nil
		}
		if ecs.HasResource[*input.States](w) {
			if _, err := input.ProcessEvents(w, events); err != nil {
				return err
			}
		}
		if err := a.Frame(); err != nil {
			return err
		}
		surface.SwapBuffers()
	}
	return nil
}

// dispatch handles the events the loop itself reacts to and reports whether
// the loop should end.
func dispatch(w *ecs.World, surface Surface, events []core.WindowEvent) bool {
	for _, ev := range events {
		switch e := ev.(type) {
		case core.CloseRequested:
			return true
		case core.KeyboardInput:
			if input.KeyCode(e.Key) == input.KEY_ESCAPE && e.State == core.Pressed {
				return true
			}
		case core.Resized:
			surface.Resize(e.Width, e.Height)
			if ecs.HasResource[*ecs.Events[core.Resized]](w) {
				if err := ecs.Send(w, e); err != nil {
					core.LogWarn("resize event dropped: %s", err)
				}
			}
		}
	}
	return false
}
