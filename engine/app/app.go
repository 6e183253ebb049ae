package app

import (
	"errors"
	"sync"

	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
)

// Runner drives a built App, typically an event loop that calls Startup once
// and then Frame until the window closes.
type Runner func(a *App) error

// App is a fully configured application: a World holding every resource and
// the schedule registry.
type App struct {
	world     *ecs.World
	schedules *ecs.Schedules
	runner    Runner
	clock     *core.Clock
	cleanups  []func() error

	startup  sync.Once
	startErr error
	shutdown bool
}

func newApp(world *ecs.World, schedules *ecs.Schedules, runner Runner) *App {
	return &App{
		world:     world,
		schedules: schedules,
		runner:    runner,
		clock:     core.NewClock(),
	}
}

func (a *App) World() *ecs.World {
	return a.world
}

// SetClock replaces the clock that advances the Time resource.
func (a *App) SetClock(c *core.Clock) {
	a.clock = c
}

// RunSchedule runs a single schedule by label.
func (a *App) RunSchedule(label ecs.Label) error {
	if a.shutdown {
		return ErrAppShutdown
	}
	return a.schedules.Run(label, a.world)
}

// Startup runs StartupSingleThreaded and then Startup. Later calls return the
// result of the first one.
func (a *App) Startup() error {
	a.startup.Do(func() {
		if a.startErr = a.RunSchedule(StartupSingleThreaded); a.startErr != nil {
			return
		}
		if a.startErr = a.RunSchedule(Startup); a.startErr != nil {
			return
		}
		a.clock.Start()
	})
	return a.startErr
}

// Update advances Time, rotates event buffers and runs PreUpdate and Update.
func (a *App) Update() error {
	if t, err := ecs.BorrowMut[*core.Time](a.world); err == nil {
		t.Get().Advance(a.clock)
		t.Release()
	}
	a.world.UpdateEvents()
	if err := a.RunSchedule(PreUpdate); err != nil {
		return err
	}
	return a.RunSchedule(Update)
}

func (a *App) Render() error {
	return a.RunSchedule(Render)
}

// Frame is Update followed by Render.
func (a *App) Frame() error {
	if err := a.Update(); err != nil {
		return err
	}
	return a.Render()
}

// Shutdown runs the registered cleanups and stops the worker pool. The App
// cannot run schedules afterwards.
func (a *App) Shutdown() error {
	if a.shutdown {
		return ErrAppShutdown
	}
	a.shutdown = true
	a.clock.Stop()
	core.LogInfo("app shutting down")

	err := runCleanups(a.cleanups)
	if ex := a.schedules.Executor(); ex != nil {
		err = errors.Join(err, ex.Shutdown())
	}
	return err
}

func runCleanups(cleanups []func() error) error {
	var errs []error
	for i := len(cleanups) - 1; i >= 0; i-- {
		if err := cleanups[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
