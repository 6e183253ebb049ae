package app

import "github.com/spaghettifunk/kiln/engine/ecs"

// Canonical schedules registered by NewBuilder, in the order a runner
// drives them.
const (
	// StartupSingleThreaded runs once, sequentially, on the runner thread while
	// the graphics context is current. Blocking loads belong here.
	StartupSingleThreaded ecs.Label = "StartupSingleThreaded"
	// Startup runs once after StartupSingleThreaded.
	Startup ecs.Label = "Startup"
	// PreUpdate runs every frame right after the Time resource advanced.
	PreUpdate ecs.Label = "PreUpdate"
	Update    ecs.Label = "Update"
	// Render runs every frame after Update, sequentially, on the runner thread.
	Render ecs.Label = "Render"
)

type canonicalSchedule struct {
	label  ecs.Label
	policy ecs.ExecutionPolicy
}

var canonicalSchedules = []canonicalSchedule{
	{StartupSingleThreaded, ecs.Sequential},
	{Startup, ecs.Concurrent},
	{PreUpdate, ecs.Concurrent},
	{Update, ecs.Concurrent},
	{Render, ecs.Sequential},
}
