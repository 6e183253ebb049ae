package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kiln/engine/app"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
	"github.com/spaghettifunk/kiln/engine/input"
)

// CameraPlugin spawns a fly camera and drives it from the keyboard: W/S/A/D
// move, the arrow keys turn and the mouse wheel zooms.
type CameraPlugin struct {
	Position mgl32.Vec3
	Movement Movement
}

// DefaultCameraPlugin places the camera three units back from the origin.
func DefaultCameraPlugin() CameraPlugin {
	return CameraPlugin{
		Position: mgl32.Vec3{0, 0, 3},
		Movement: *DefaultMovement(),
	}
}

func (CameraPlugin) Name() string {
	return "camera"
}

func (p CameraPlugin) Build(b *app.Builder) *app.Builder {
	reader := ecs.NewEventReader[input.InputEvent]()
	return b.
		AddSystem(app.Startup, ecs.NewSystem("camera spawn", p.spawn)).
		AddSystem(app.Update, ecs.NewSystem("camera zoom", zoomSystem(reader),
			ecs.Reads[*ecs.Events[input.InputEvent]](),
			ecs.WritesComponent[*Camera]())).
		AddSystem(app.Update, ecs.NewSystem("camera movement", movementSystem,
			ecs.After("camera zoom"),
			ecs.Reads[*input.States](),
			ecs.Reads[*core.Time](),
			ecs.WritesComponent[*Camera](),
			ecs.ReadsComponent[*Movement]())).
		AddSystem(app.Update, ecs.NewSystem("camera rotation", rotationSystem,
			ecs.After("camera movement"),
			ecs.Reads[*input.States](),
			ecs.Reads[*core.Time](),
			ecs.WritesComponent[*Camera](),
			ecs.ReadsComponent[*Movement]()))
}

func (p CameraPlugin) spawn(ctx *ecs.Context) error {
	movement := p.Movement
	ctx.Commands.Spawn(NewCamera(p.Position), &movement)
	core.LogDebug("camera spawned at %v", p.Position)
	return nil
}

func zoomSystem(reader *ecs.EventReader[input.InputEvent]) ecs.SystemFunc {
	return func(ctx *ecs.Context) error {
		events, err := ecs.Resource[*ecs.Events[input.InputEvent]](ctx.World)
		if err != nil {
			return err
		}
		var scroll float32
		for _, ev := range reader.Read(events) {
			scroll += ev.Scroll
		}
		if scroll == 0 {
			return nil
		}
		_, cam, err := ecs.Single[*Camera](ctx.World)
		if err != nil {
			return err
		}
		cam.ApplyScroll(scroll)
		return nil
	}
}

func movementSystem(ctx *ecs.Context) error {
	states := ecs.MustResource[*input.States](ctx.World)
	t := ecs.MustResource[*core.Time](ctx.World)

	var local mgl32.Vec3
	if states.IsHeld(input.KEY_W) {
		local[2] -= 1
	}
	if states.IsHeld(input.KEY_S) {
		local[2] += 1
	}
	if states.IsHeld(input.KEY_A) {
		local[0] -= 1
	}
	if states.IsHeld(input.KEY_D) {
		local[0] += 1
	}

	_, cam, movement, err := ecs.Single2[*Camera, *Movement](ctx.World)
	if err != nil {
		return err
	}
	cam.Move(local, movement, t.DeltaSeconds())
	return nil
}

func rotationSystem(ctx *ecs.Context) error {
	states := ecs.MustResource[*input.States](ctx.World)
	t := ecs.MustResource[*core.Time](ctx.World)

	var pitch, yaw float32
	if states.IsHeld(input.KEY_UP) {
		pitch += 1
	}
	if states.IsHeld(input.KEY_DOWN) {
		pitch -= 1
	}
	if states.IsHeld(input.KEY_LEFT) {
		yaw -= 1
	}
	if states.IsHeld(input.KEY_RIGHT) {
		yaw += 1
	}

	_, cam, movement, err := ecs.Single2[*Camera, *Movement](ctx.World)
	if err != nil {
		return err
	}
	cam.Rotate(pitch, yaw, movement, t.DeltaSeconds())
	return nil
}
