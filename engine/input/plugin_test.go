package input

import (
	"testing"

	"github.com/spaghettifunk/kiln/engine/app"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
)

func TestInputPlugin(t *testing.T) {
	reader := ecs.NewEventReader[InputEvent]()
	var seen []Input

	a, err := app.NewBuilder().
		AddPlugin(InputPlugin{ReleaseOnFocusLoss: true}).
		AddSystem(app.Update, ecs.NewSystem("read input", func(ctx *ecs.Context) error {
			for _, ev := range reader.Read(ecs.MustResource[*ecs.Events[InputEvent]](ctx.World)) {
				seen = append(seen, ev.Input)
			}
			return nil
		}, ecs.Reads[*ecs.Events[InputEvent]](), ecs.Reads[*States]())).
		SetRunner(func(*app.App) error { return nil }).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer a.Shutdown()

	if !ecs.MustResource[*Bridge](a.World()).ReleaseOnFocusLoss {
		t.Error("bridge did not pick up the focus loss policy")
	}
	if _, err := ProcessEvents(a.World(), []core.WindowEvent{key(KEY_E, core.Pressed)}); err != nil {
		t.Fatalf("ProcessEvents: %v", err)
	}
	if err := a.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(seen) != 1 || !seen[0].JustPressed(KEY_E) {
		t.Errorf("systems saw %v", seen)
	}
}
