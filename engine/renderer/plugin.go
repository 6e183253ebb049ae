package renderer

import (
	"errors"

	"github.com/spaghettifunk/kiln/engine/app"
	"github.com/spaghettifunk/kiln/engine/assets"
	"github.com/spaghettifunk/kiln/engine/camera"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
)

// RenderPlugin stores a Renderer over Backend in the World. The backend is
// initialized during StartupSingleThreaded and draws during Render, using the
// camera when one exists.
//
// VertexShader, FragmentShader and Texture name assets of the assets.Manager
// resource. Without shaders the backend's built-in program is used; with
// them, changes reported by the asset watcher recompile the program.
type RenderPlugin struct {
	Backend        RendererBackend
	AppName        string
	Width          uint32
	Height         uint32
	ClearColor     [4]float32
	VertexShader   string
	FragmentShader string
	Texture        string
	FlipTextures   bool
}

func (RenderPlugin) Name() string {
	return "render"
}

func (p RenderPlugin) customShader() bool {
	return p.VertexShader != "" && p.FragmentShader != ""
}

func (p RenderPlugin) Build(b *app.Builder) *app.Builder {
	if p.Backend == nil {
		return b.Fail(ErrNoBackend)
	}
	r := NewRenderer(p.Backend)
	b = app.AddEvent[core.Resized](b.InsertResource(r).OnShutdown(r.Shutdown))

	resizes := ecs.NewEventReader[core.Resized]()
	b = b.
		AddSystem(app.StartupSingleThreaded, ecs.NewSystem("renderer init", p.initialize, ecs.Exclusive())).
		AddSystem(app.Render, ecs.NewSystem("renderer resize", resizeSystem(resizes),
			ecs.Reads[*ecs.Events[core.Resized]](),
			ecs.Writes[*Renderer]()))

	drawDeps := []string{"renderer resize"}
	if p.customShader() {
		changes := ecs.NewEventReader[assets.Changed]()
		b = b.AddSystem(app.Render, ecs.NewSystem("shader reload", p.reloadSystem(changes),
			ecs.After("renderer resize"),
			ecs.Reads[*ecs.Events[assets.Changed]](),
			ecs.Lazy[*ecs.Events[assets.Changed]](),
			ecs.Reads[*assets.Manager](),
			ecs.Lazy[*assets.Manager](),
			ecs.Writes[*Renderer]()))
		drawDeps = append(drawDeps, "shader reload")
	}

	return b.AddSystem(app.Render, ecs.NewSystem("renderer draw", p.draw,
		ecs.After(drawDeps...),
		ecs.Reads[*core.Time](),
		ecs.Writes[*Renderer](),
		ecs.ReadsComponent[*camera.Camera]()))
}

func (p RenderPlugin) initialize(ctx *ecs.Context) error {
	r, err := ecs.Resource[*Renderer](ctx.World)
	if err != nil {
		return err
	}
	if err := r.Initialize(p.AppName, p.Width, p.Height); err != nil {
		return err
	}

	if !p.customShader() && p.Texture == "" {
		return nil
	}
	m, err := ecs.Resource[*assets.Manager](ctx.World)
	if err != nil {
		return err
	}
	if p.customShader() {
		src, err := m.LoadShader(p.VertexShader, p.FragmentShader)
		if err != nil {
			return err
		}
		if err := r.UseShader(src); err != nil {
			return err
		}
	}
	if p.Texture != "" {
		tex, err := m.LoadTexture(p.Texture, p.FlipTextures)
		if err != nil {
			return err
		}
		if err := r.UseTexture(tex); err != nil {
			return err
		}
	}
	return nil
}

func resizeSystem(reader *ecs.EventReader[core.Resized]) ecs.SystemFunc {
	return func(ctx *ecs.Context) error {
		events := ecs.MustResource[*ecs.Events[core.Resized]](ctx.World)
		resized := reader.Read(events)
		if len(resized) == 0 {
			return nil
		}
		// Only the final size of the frame matters.
		last := resized[len(resized)-1]
		return ecs.MustResource[*Renderer](ctx.World).OnResize(last.Width, last.Height)
	}
}

func (p RenderPlugin) reloadSystem(reader *ecs.EventReader[assets.Changed]) ecs.SystemFunc {
	return func(ctx *ecs.Context) error {
		events, err := ecs.Resource[*ecs.Events[assets.Changed]](ctx.World)
		if err != nil {
			return nil
		}
		reload := false
		for _, c := range reader.Read(events) {
			if !c.Removed && (c.Path == p.VertexShader || c.Path == p.FragmentShader) {
				reload = true
			}
		}
		if !reload {
			return nil
		}

		m, err := ecs.Resource[*assets.Manager](ctx.World)
		if err != nil {
			return err
		}
		src, err := m.LoadShader(p.VertexShader, p.FragmentShader)
		if err == nil {
			err = ecs.MustResource[*Renderer](ctx.World).UseShader(src)
		}
		if err != nil {
			// Keep drawing with the previous program.
			core.LogWarn("shader reload failed: %s", err)
			return nil
		}
		core.LogInfo("shader program reloaded from %s and %s", p.VertexShader, p.FragmentShader)
		return nil
	}
}

func (p RenderPlugin) draw(ctx *ecs.Context) error {
	r := ecs.MustResource[*Renderer](ctx.World)
	t := ecs.MustResource[*core.Time](ctx.World)

	packet := DefaultPacket(p.ClearColor)
	packet.DeltaTime = t.Delta
	if _, cam, err := ecs.Single[*camera.Camera](ctx.World); err == nil {
		packet.View = cam.ViewMatrix()
		packet.Projection = cam.Projection(r.Aspect())
	} else if !errors.Is(err, ecs.ErrNotSingle) {
		return err
	}
	return r.DrawFrame(packet)
}
