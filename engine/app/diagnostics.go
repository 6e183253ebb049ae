package app

import (
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
)

// DiagnosticsPlugin tracks frame timings in a core.Metrics resource and logs
// them, together with the entity count, every Interval seconds. An Interval
// of zero records metrics without logging.
type DiagnosticsPlugin struct {
	Interval float64
}

func (DiagnosticsPlugin) Name() string {
	return "diagnostics"
}

type diagnosticsState struct {
	sinceLog float64
}

func (p DiagnosticsPlugin) Build(b *Builder) *Builder {
	state := &diagnosticsState{}
	return b.
		InsertResource(core.NewMetrics()).
		AddSystem(PreUpdate, ecs.NewSystem("diagnostics", func(ctx *ecs.Context) error {
			t, err := ecs.Resource[*core.Time](ctx.World)
			if err != nil {
				return err
			}
			m, err := ecs.BorrowMut[*core.Metrics](ctx.World)
			if err != nil {
				return err
			}
			defer m.Release()

			metrics := m.Get()
			metrics.Update(t.Delta)
			if p.Interval <= 0 {
				return nil
			}
			state.sinceLog += t.Delta
			if state.sinceLog < p.Interval {
				return nil
			}
			state.sinceLog = 0
			core.Logger().Info("frame stats",
				"fps", metrics.FPS(),
				"frame_ms", metrics.FrameTime(),
				"frames", metrics.TotalFrames(),
				"entities", ctx.World.EntityCount())
			return nil
		}, ecs.Reads[*core.Time](), ecs.Writes[*core.Metrics]()))
}
