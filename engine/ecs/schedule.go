package ecs

import (
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/spaghettifunk/kiln/engine/core"
)

// ExecutionPolicy is fixed when a schedule is created.
type ExecutionPolicy uint8

const (
	// Concurrent schedules run systems without conflicting access in parallel
	// on the executor.
	Concurrent ExecutionPolicy = iota
	// Sequential schedules run every system on the calling goroutine in
	// declaration order. Used where thread affinity matters, e.g. while a GL
	// context is current.
	Sequential
)

func (p ExecutionPolicy) String() string {
	switch p {
	case Concurrent:
		return "Concurrent"
	case Sequential:
		return "Sequential"
	default:
		return "Unknown"
	}
}

// Schedule is an ordered set of systems run together once per invocation.
type Schedule struct {
	label   Label
	policy  ExecutionPolicy
	systems []*System
	index   map[string]int

	// plan holds batches of indices into systems; nil means it must be rebuilt.
	plan [][]int
}

func NewSchedule(label Label, policy ExecutionPolicy) *Schedule {
	return &Schedule{
		label:  label,
		policy: policy,
		index:  make(map[string]int),
	}
}

func (s *Schedule) Label() Label {
	return s.label
}

func (s *Schedule) Policy() ExecutionPolicy {
	return s.policy
}

func (s *Schedule) Len() int {
	return len(s.systems)
}

// SystemNames returns the systems in declaration order.
func (s *Schedule) SystemNames() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.Name
	}
	return names
}

// AddSystem appends sys. Every dependency must already be part of the
// schedule, so declaration order is always a valid execution order.
func (s *Schedule) AddSystem(sys System) error {
	if err := sys.validate(); err != nil {
		return err
	}
	if _, ok := s.index[sys.Name]; ok {
		return fmt.Errorf("%w: %q in %s", ErrDuplicateSystem, sys.Name, s.label)
	}
	for _, dep := range sys.After {
		if _, ok := s.index[dep]; !ok {
			return fmt.Errorf("%w: %q needs %q in %s", ErrUnknownDependency, sys.Name, dep, s.label)
		}
	}
	s.index[sys.Name] = len(s.systems)
	s.systems = append(s.systems, &sys)
	s.plan = nil
	return nil
}

// Batches returns the execution plan by system name. Systems of one batch may
// run concurrently; batches run in order.
func (s *Schedule) Batches() [][]string {
	plan := s.plan
	if plan == nil {
		plan = s.buildPlan()
	}
	out := make([][]string, len(plan))
	for i, batch := range plan {
		for _, idx := range batch {
			out[i] = append(out[i], s.systems[idx].Name)
		}
	}
	return out
}

func (s *Schedule) buildPlan() [][]int {
	if s.policy == Sequential {
		plan := make([][]int, len(s.systems))
		for i := range s.systems {
			plan[i] = []int{i}
		}
		return plan
	}

	var plan [][]int
	batchOf := make([]int, len(s.systems))
	for i, sys := range s.systems {
		b := 0
		for _, dep := range sys.After {
			b = max(b, batchOf[s.index[dep]]+1)
		}
		for ; b < len(plan); b++ {
			conflict := slices.ContainsFunc(plan[b], func(j int) bool {
				return sys.Access.Conflicts(&s.systems[j].Access)
			})
			if !conflict {
				break
			}
		}
		if b == len(plan) {
			plan = append(plan, nil)
		}
		plan[b] = append(plan[b], i)
		batchOf[i] = b
	}
	return plan
}

// prepare checks that every declared resource exists and caches the plan.
func (s *Schedule) prepare(w *World) error {
	if s.plan != nil {
		return nil
	}
	var errs []error
	for _, sys := range s.systems {
		for _, t := range sys.Access.resources() {
			if slices.Contains(sys.Access.Unverified, t) {
				continue
			}
			if !w.HasResourceType(t) {
				errs = append(errs, fmt.Errorf("schedule %s: system %q: %w", s.label, sys.Name, notFound(t)))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.plan = s.buildPlan()
	core.LogDebug("schedule %s planned: %d systems in %d batches (%s)", s.label, len(s.systems), len(s.plan), s.policy)
	return nil
}

// Run executes every system exactly once. Commands queued by a batch are
// applied before the next batch starts. System errors are collected and
// returned together; a panicking system aborts the pass on the caller.
func (s *Schedule) Run(w *World, ex *Executor) error {
	if err := s.prepare(w); err != nil {
		return err
	}

	cmds := NewCommands()
	var errs []error
	for _, batch := range s.plan {
		if s.policy == Sequential || len(batch) == 1 || ex == nil {
			for _, idx := range batch {
				if err := s.runSystem(s.systems[idx], w, cmds); err != nil {
					errs = append(errs, err)
				}
			}
		} else {
			errs = append(errs, s.runBatch(batch, w, cmds, ex)...)
		}
		if err := cmds.Apply(w); err != nil {
			errs = append(errs, fmt.Errorf("schedule %s: commands: %w", s.label, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Schedule) runSystem(sys *System, w *World, cmds *Commands) error {
	ctx := &Context{
		World:      w,
		Commands:   cmds,
		Schedule:   s.label,
		SystemName: sys.Name,
	}
	if err := sys.Fn(ctx); err != nil {
		return &SystemError{Schedule: s.label, System: sys.Name, Err: err}
	}
	return nil
}

func (s *Schedule) runBatch(batch []int, w *World, cmds *Commands, ex *Executor) []error {
	results := make([]error, len(batch))
	panics := make([]*SystemPanic, len(batch))

	var wg sync.WaitGroup
	wg.Add(len(batch))
	for i, idx := range batch {
		sys := s.systems[idx]
		ex.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panics[i] = &SystemPanic{Schedule: s.label, System: sys.Name, Value: r, Stack: debug.Stack()}
				}
			}()
			results[i] = s.runSystem(sys, w, cmds)
		})
	}
	wg.Wait()

	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}

	var errs []error
	for _, err := range results {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
