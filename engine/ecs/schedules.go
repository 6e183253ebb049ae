package ecs

import (
	"fmt"
	"slices"
)

// Label identifies a schedule in the registry.
type Label string

func (l Label) String() string {
	return string(l)
}

// Schedules is the schedule registry. Once an application is built it is
// stored in the World as a resource.
type Schedules struct {
	schedules map[Label]*Schedule
	order     []Label
	executor  *Executor
}

func NewSchedules() *Schedules {
	return &Schedules{
		schedules: make(map[Label]*Schedule),
	}
}

// SetExecutor sets the pool used by concurrent schedules. Without one they
// run their batches on the caller.
func (r *Schedules) SetExecutor(ex *Executor) {
	r.executor = ex
}

func (r *Schedules) Executor() *Executor {
	return r.executor
}

// Add registers an empty schedule. A duplicate label fails with
// ErrDuplicateSchedule and leaves the existing schedule untouched.
func (r *Schedules) Add(label Label, policy ExecutionPolicy) error {
	if _, ok := r.schedules[label]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSchedule, label)
	}
	r.schedules[label] = NewSchedule(label, policy)
	r.order = append(r.order, label)
	return nil
}

func (r *Schedules) Get(label Label) (*Schedule, bool) {
	s, ok := r.schedules[label]
	return s, ok
}

func (r *Schedules) Has(label Label) bool {
	_, ok := r.schedules[label]
	return ok
}

// Labels returns the registered labels in registration order.
func (r *Schedules) Labels() []Label {
	return slices.Clone(r.order)
}

func (r *Schedules) AddSystem(label Label, sys System) error {
	s, ok := r.schedules[label]
	if !ok {
		return fmt.Errorf("%w: %s (adding %q)", ErrUnknownSchedule, label, sys.Name)
	}
	return s.AddSystem(sys)
}

func (r *Schedules) Run(label Label, w *World) error {
	s, ok := r.schedules[label]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchedule, label)
	}
	return s.Run(w, r.executor)
}

// RunSchedule runs label from the registry stored in the world.
func (w *World) RunSchedule(label Label) error {
	reg, err := Resource[*Schedules](w)
	if err != nil {
		return err
	}
	return reg.Run(label, w)
}
