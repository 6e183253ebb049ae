package input

import "github.com/spaghettifunk/kiln/engine/app"

// InputPlugin registers the input resources: States, the Bridge fed by the
// runner and the InputEvent queue systems read from.
type InputPlugin struct {
	ReleaseOnFocusLoss bool
}

func (InputPlugin) Name() string {
	return "input"
}

func (p InputPlugin) Build(b *app.Builder) *app.Builder {
	b = b.
		InsertResource(NewStates()).
		InsertResource(NewBridge(p.ReleaseOnFocusLoss))
	return app.AddEvent[InputEvent](b)
}
