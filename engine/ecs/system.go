package ecs

import (
	"fmt"
	"reflect"
	"slices"
)

// Context is handed to a system for one invocation.
type Context struct {
	World      *World
	Commands   *Commands
	Schedule   Label
	SystemName string
}

// SystemFunc is the body of a system. A returned error is reported by the
// schedule run; it does not stop the other systems of the pass.
type SystemFunc func(ctx *Context) error

// Access describes which resource and component types a system reads or
// writes. The scheduler never runs two systems with conflicting access in
// the same batch.
type Access struct {
	ResReads   []reflect.Type
	ResWrites  []reflect.Type
	Reads      []reflect.Type
	Writes     []reflect.Type
	Exclusive  bool
	Unverified []reflect.Type
}

// Conflicts reports whether a and other may not run concurrently: one of them
// is exclusive, or one writes a type the other reads or writes.
func (a *Access) Conflicts(other *Access) bool {
	if a.Exclusive || other.Exclusive {
		return true
	}
	return overlaps(a.ResWrites, other.ResReads) ||
		overlaps(a.ResWrites, other.ResWrites) ||
		overlaps(a.ResReads, other.ResWrites) ||
		overlaps(a.Writes, other.Reads) ||
		overlaps(a.Writes, other.Writes) ||
		overlaps(a.Reads, other.Writes)
}

func overlaps(a, b []reflect.Type) bool {
	for _, t := range a {
		if slices.Contains(b, t) {
			return true
		}
	}
	return false
}

// resources returns every resource type the system declared.
func (a *Access) resources() []reflect.Type {
	out := make([]reflect.Type, 0, len(a.ResReads)+len(a.ResWrites))
	out = append(out, a.ResReads...)
	for _, t := range a.ResWrites {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// System is a named unit of behaviour with declared dependencies and access.
type System struct {
	Name   string
	Fn     SystemFunc
	After  []string
	Access Access
}

type SystemOption func(*System)

func NewSystem(name string, fn SystemFunc, opts ...SystemOption) System {
	s := System{Name: name, Fn: fn}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s *System) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSystem)
	}
	if s.Fn == nil {
		return fmt.Errorf("%w: %q has no function", ErrInvalidSystem, s.Name)
	}
	if slices.Contains(s.After, s.Name) {
		return fmt.Errorf("%w: %q depends on itself", ErrInvalidSystem, s.Name)
	}
	return nil
}

// After declares systems of the same schedule that must run first.
func After(names ...string) SystemOption {
	return func(s *System) {
		for _, n := range names {
			if !slices.Contains(s.After, n) {
				s.After = append(s.After, n)
			}
		}
	}
}

// Reads declares shared access to the resource of type T. The resource must
// exist when the schedule is planned.
func Reads[T any]() SystemOption {
	return func(s *System) {
		s.Access.ResReads = append(s.Access.ResReads, TypeOf[T]())
	}
}

// Writes declares exclusive access to the resource of type T. The resource
// must exist when the schedule is planned.
func Writes[T any]() SystemOption {
	return func(s *System) {
		s.Access.ResWrites = append(s.Access.ResWrites, TypeOf[T]())
	}
}

// Lazy marks the resource of type T as possibly absent at planning time, for
// systems that create it or check for it themselves.
func Lazy[T any]() SystemOption {
	return func(s *System) {
		s.Access.Unverified = append(s.Access.Unverified, TypeOf[T]())
	}
}

func ReadsComponent[T any]() SystemOption {
	return func(s *System) {
		s.Access.Reads = append(s.Access.Reads, TypeOf[T]())
	}
}

func WritesComponent[T any]() SystemOption {
	return func(s *System) {
		s.Access.Writes = append(s.Access.Writes, TypeOf[T]())
	}
}

// Exclusive makes the system conflict with every other system, so it always
// runs alone in its batch.
func Exclusive() SystemOption {
	return func(s *System) {
		s.Access.Exclusive = true
	}
}
