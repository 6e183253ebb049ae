package app

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
)

// buildState is shared by a Builder and the CompleteBuilder it turns into,
// so a stale *Builder kept after SetRunner can be detected.
type buildState struct {
	world     *ecs.World
	schedules *ecs.Schedules
	plugins   map[string]struct{}
	workers   int
	cleanups  []func() error
	errs      []error
	sealed    bool
	consumed  bool
}

func (s *buildState) record(err error) {
	core.LogError("app builder: %s", err)
	s.errs = append(s.errs, err)
}

// Builder is an application under configuration (the Incomplete phase). It
// accepts resources, plugins, schedules and systems until SetRunner turns it
// into a CompleteBuilder.
//
// Configuration calls chain; the first failures are kept and returned by
// Err, Build and Run instead of aborting the process.
type Builder struct {
	state *buildState
}

// NewBuilder creates a builder holding an empty World, the Time resource and
// the canonical schedules.
func NewBuilder() *Builder {
	b := &Builder{
		state: &buildState{
			world:     ecs.NewWorld(),
			schedules: ecs.NewSchedules(),
			plugins:   make(map[string]struct{}),
			workers:   max(runtime.GOMAXPROCS(0), 1),
		},
	}
	for _, cs := range canonicalSchedules {
		if err := b.state.schedules.Add(cs.label, cs.policy); err != nil {
			b.state.record(err)
		}
	}
	if err := b.state.world.InsertResource(&core.Time{}); err != nil {
		b.state.record(err)
	}
	return b
}

func (b *Builder) configurable() bool {
	if b.state.sealed {
		b.state.record(ErrBuilderSealed)
		return false
	}
	return true
}

// Workers sets the size of the pool used by concurrent schedules.
func (b *Builder) Workers(n int) *Builder {
	if !b.configurable() {
		return b
	}
	if n < 1 {
		b.state.record(fmt.Errorf("%w: %d", ecs.ErrNoWorkers, n))
		return b
	}
	b.state.workers = n
	return b
}

// InsertResource stores res in the World, replacing a resource of the same type.
func (b *Builder) InsertResource(res any) *Builder {
	if !b.configurable() {
		return b
	}
	if err := b.state.world.InsertResource(res); err != nil {
		b.state.record(err)
	}
	return b
}

// AddSchedule registers a new empty schedule. A duplicate label is recorded
// as ErrDuplicateSchedule and the existing schedule is kept.
func (b *Builder) AddSchedule(label ecs.Label, policy ecs.ExecutionPolicy) *Builder {
	if !b.configurable() {
		return b
	}
	if err := b.state.schedules.Add(label, policy); err != nil {
		b.state.record(err)
	}
	return b
}

// AddSystem appends sys to the schedule registered under label.
func (b *Builder) AddSystem(label ecs.Label, sys ecs.System) *Builder {
	if !b.configurable() {
		return b
	}
	if err := b.state.schedules.AddSystem(label, sys); err != nil {
		b.state.record(err)
	}
	return b
}

// AddSystemFunc is AddSystem for a system that only declares dependencies.
func (b *Builder) AddSystemFunc(label ecs.Label, name string, fn ecs.SystemFunc, deps ...string) *Builder {
	return b.AddSystem(label, ecs.NewSystem(name, fn, ecs.After(deps...)))
}

// HasSchedule lets plugins check for a schedule before registering it.
func (b *Builder) HasSchedule(label ecs.Label) bool {
	return b.state.schedules.Has(label)
}

// HasResource reports whether a resource of the given type was inserted.
func HasResource[T any](b *Builder) bool {
	return ecs.HasResource[T](b.state.world)
}

// AddEvent registers the Events[T] queue unless it already exists.
func AddEvent[T any](b *Builder) *Builder {
	if HasResource[*ecs.Events[T]](b) {
		return b
	}
	return b.InsertResource(ecs.NewEvents[T]())
}

// Fail records a configuration failure found by a plugin, such as an asset
// directory that cannot be opened. Build and Run will return it.
func (b *Builder) Fail(err error) *Builder {
	if err != nil {
		b.state.record(err)
	}
	return b
}

// OnShutdown registers fn to run when the App shuts down. Cleanups run in
// reverse registration order.
func (b *Builder) OnShutdown(fn func() error) *Builder {
	if !b.configurable() {
		return b
	}
	b.state.cleanups = append(b.state.cleanups, fn)
	return b
}

// Err returns the configuration failures recorded so far.
func (b *Builder) Err() error {
	return errors.Join(b.state.errs...)
}

// SetRunner fixes the runner and ends the configuration phase. The returned
// CompleteBuilder only offers Build and Run.
func (b *Builder) SetRunner(runner Runner) *CompleteBuilder {
	if !b.configurable() {
		return &CompleteBuilder{state: b.state, runner: runner}
	}
	if runner == nil {
		b.state.record(ErrNoRunner)
	}
	b.state.sealed = true
	return &CompleteBuilder{state: b.state, runner: runner}
}

// CompleteBuilder is an application with its runner assigned (the Complete
// phase). It has no configuration methods; it is consumed by exactly one
// call to Build or Run.
type CompleteBuilder struct {
	state  *buildState
	runner Runner
}

// Build stores the schedule registry in the World and returns the runnable
// App. Configuration failures recorded earlier are returned instead.
func (c *CompleteBuilder) Build() (*App, error) {
	if c.state.consumed {
		return nil, ErrBuilderConsumed
	}
	c.state.consumed = true

	if err := errors.Join(c.state.errs...); err != nil {
		_ = runCleanups(c.state.cleanups)
		return nil, err
	}

	ex, err := ecs.NewExecutor(c.state.workers)
	if err != nil {
		return nil, err
	}
	c.state.schedules.SetExecutor(ex)
	if err := c.state.world.InsertResource(c.state.schedules); err != nil {
		_ = ex.Shutdown()
		return nil, err
	}

	a := newApp(c.state.world, c.state.schedules, c.runner)
	a.cleanups = c.state.cleanups
	core.Logger().Info("app built",
		"world", c.state.world.ID(),
		"schedules", len(c.state.schedules.Labels()),
		"resources", c.state.world.ResourceCount(),
		"workers", ex.Workers())
	return a, nil
}

// Run builds the App and hands it to the runner. The App is shut down when
// the runner returns.
func (c *CompleteBuilder) Run() error {
	a, err := c.Build()
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Shutdown(); err != nil {
			core.LogWarn("app shutdown: %s", err)
		}
	}()
	return c.runner(a)
}
