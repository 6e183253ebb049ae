package testbed

import (
	"github.com/spaghettifunk/kiln/engine/app"
	"github.com/spaghettifunk/kiln/engine/camera"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
	"github.com/spaghettifunk/kiln/engine/input"
	"github.com/spaghettifunk/kiln/engine/math"
)

// Spinner rotates around the Y axis at Speed degrees per second.
type Spinner struct {
	Angle float32
	Speed float32
}

// TestbedPlugin spawns a few spinning entities and logs key presses. It is
// the demo content of the testbed binary.
type TestbedPlugin struct {
	Speeds []float32
}

func NewTestbedPlugin() TestbedPlugin {
	return TestbedPlugin{Speeds: []float32{30, 60, 120}}
}

func (TestbedPlugin) Name() string {
	return "testbed"
}

func (p TestbedPlugin) Build(b *app.Builder) *app.Builder {
	reader := ecs.NewEventReader[input.InputEvent]()
	return b.
		AddSystemFunc(app.Startup, "testbed spawn", p.spawn).
		AddSystem(app.Update, ecs.NewSystem("spin", spin,
			ecs.Reads[*core.Time](),
			ecs.WritesComponent[*Spinner]())).
		AddSystem(app.Update, ecs.NewSystem("testbed keys", logKeys(reader),
			ecs.Reads[*ecs.Events[input.InputEvent]](),
			ecs.ReadsComponent[*camera.Camera]()))
}

func (p TestbedPlugin) spawn(ctx *ecs.Context) error {
	for _, speed := range p.Speeds {
		ctx.Commands.Spawn(&Spinner{Speed: speed})
	}
	core.LogDebug("testbed spawned %d spinners", len(p.Speeds))
	return nil
}

func spin(ctx *ecs.Context) error {
	dt := ecs.MustResource[*core.Time](ctx.World).DeltaSeconds()
	ecs.Each(ctx.World, func(_ ecs.Entity, s *Spinner) {
		s.Angle = math.WrapDegrees(s.Angle + s.Speed*dt)
	})
	return nil
}

func logKeys(reader *ecs.EventReader[input.InputEvent]) ecs.SystemFunc {
	return func(ctx *ecs.Context) error {
		events := ecs.MustResource[*ecs.Events[input.InputEvent]](ctx.World)
		for _, ev := range reader.Read(events) {
			for _, key := range ev.Pressed {
				switch key {
				case input.KEY_A:
					// Example on checking for a key
					core.LogDebug("Explicit - A key pressed!")
				case input.KEY_P:
					logCameraPosition(ctx.World)
				default:
					core.LogDebug("'%s' key pressed in window.", key)
				}
			}
			for _, key := range ev.Released {
				core.LogDebug("'%s' key released in window.", key)
			}
		}
		return nil
	}
}

func logCameraPosition(w *ecs.World) {
	_, cam, err := ecs.Single[*camera.Camera](w)
	if err != nil {
		core.LogDebug("no camera: %s", err)
		return
	}
	core.LogDebug("Pos:[%.2f, %.2f, %.2f]", cam.Position.X(), cam.Position.Y(), cam.Position.Z())
}
