package ecs

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// resourceCell holds a resource and its borrow state: 0 means free, a
// positive value counts shared borrows and -1 marks an exclusive borrow.
type resourceCell struct {
	value any
	state atomic.Int32
}

func (c *resourceCell) borrowed() bool {
	return c.state.Load() != 0
}

func (c *resourceCell) acquireShared() bool {
	for {
		s := c.state.Load()
		if s < 0 {
			return false
		}
		if c.state.CompareAndSwap(s, s+1) {
			return true
		}
	}
}

func (c *resourceCell) acquireExclusive() bool {
	return c.state.CompareAndSwap(0, -1)
}

func notFound(t reflect.Type) error {
	return fmt.Errorf("%w: %s", ErrResourceNotFound, t)
}

func borrowed(t reflect.Type) error {
	return fmt.Errorf("%w: %s", ErrResourceBorrowed, t)
}

// TypeOf returns the key used for resources of type T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Resource returns the resource stored under type T. T is the dynamic type
// that was inserted, usually a pointer such as *core.Time.
func Resource[T any](w *World) (T, error) {
	t := TypeOf[T]()
	c, ok := w.cell(t)
	if !ok {
		var zero T
		return zero, notFound(t)
	}
	return c.value.(T), nil
}

// MustResource is Resource for systems whose access was validated when the
// schedule was planned. It panics when the resource is missing.
func MustResource[T any](w *World) T {
	res, err := Resource[T](w)
	if err != nil {
		panic(err)
	}
	return res
}

func HasResource[T any](w *World) bool {
	return w.HasResourceType(TypeOf[T]())
}

// RemoveResource deletes the resource of type T. It fails with
// ErrResourceNotFound when absent and ErrResourceBorrowed while borrowed.
func RemoveResource[T any](w *World) error {
	return w.removeResource(TypeOf[T]())
}

// Ref is a shared borrow of a resource. Release is idempotent.
type Ref[T any] struct {
	cell     *resourceCell
	value    T
	released atomic.Bool
}

func (r *Ref[T]) Get() T {
	return r.value
}

func (r *Ref[T]) Release() {
	if r.released.CompareAndSwap(false, true) {
		r.cell.state.Add(-1)
	}
}

// Mut is an exclusive borrow of a resource. Release is idempotent.
type Mut[T any] struct {
	cell     *resourceCell
	value    T
	released atomic.Bool
}

func (m *Mut[T]) Get() T {
	return m.value
}

func (m *Mut[T]) Release() {
	if m.released.CompareAndSwap(false, true) {
		m.cell.state.CompareAndSwap(-1, 0)
	}
}

// Borrow takes a shared borrow. Any number of shared borrows may be live at
// once, but none while an exclusive borrow is held.
func Borrow[T any](w *World) (*Ref[T], error) {
	t := TypeOf[T]()
	c, ok := w.cell(t)
	if !ok {
		return nil, notFound(t)
	}
	if !c.acquireShared() {
		return nil, borrowed(t)
	}
	return &Ref[T]{cell: c, value: c.value.(T)}, nil
}

// BorrowMut takes an exclusive borrow. It fails while any other borrow of
// the same resource is live.
func BorrowMut[T any](w *World) (*Mut[T], error) {
	t := TypeOf[T]()
	c, ok := w.cell(t)
	if !ok {
		return nil, notFound(t)
	}
	if !c.acquireExclusive() {
		return nil, borrowed(t)
	}
	return &Mut[T]{cell: c, value: c.value.(T)}, nil
}
