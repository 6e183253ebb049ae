package assets

import (
	"github.com/spaghettifunk/kiln/engine/app"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
)

// AssetsPlugin stores a Manager for Dir in the World. With HotReload, file
// changes are published as Changed events during PreUpdate.
type AssetsPlugin struct {
	Dir       string
	HotReload bool
}

func (AssetsPlugin) Name() string {
	return "assets"
}

func (p AssetsPlugin) Build(b *app.Builder) *app.Builder {
	m, err := NewManager(p.Dir)
	if err != nil {
		return b.Fail(err)
	}
	b = app.AddEvent[Changed](b.InsertResource(m).OnShutdown(m.Close))
	if !p.HotReload {
		return b
	}
	if err := m.Watch(); err != nil {
		core.LogWarn("asset hot reload disabled: %s", err)
		return b
	}
	return b.AddSystem(app.PreUpdate, ecs.NewSystem("asset changes", publishChanges,
		ecs.Reads[*Manager](),
		ecs.Writes[*ecs.Events[Changed]]()))
}

func publishChanges(ctx *ecs.Context) error {
	m := ecs.MustResource[*Manager](ctx.World)
	events := ecs.MustResource[*ecs.Events[Changed]](ctx.World)
	for _, c := range m.Changes() {
		core.Logger().Info("asset changed", "path", c.Path, "kind", c.Kind, "removed", c.Removed)
		events.Send(c)
	}
	return nil
}
