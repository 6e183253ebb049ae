package ecs

import (
	"errors"
	"fmt"
)

var (
	ErrNilResource       = errors.New("resource is nil")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrResourceBorrowed  = errors.New("resource already borrowed")
	ErrEntityNotFound    = errors.New("entity not found")
	ErrComponentNotFound = errors.New("component not found")
	ErrNotSingle         = errors.New("query does not match exactly one entity")
	ErrNilComponent      = errors.New("component is nil")

	ErrDuplicateSchedule = errors.New("schedule label already registered")
	ErrUnknownSchedule   = errors.New("schedule label not registered")
	ErrDuplicateSystem   = errors.New("system already registered in schedule")
	ErrUnknownDependency = errors.New("system dependency not registered in schedule")
	ErrInvalidSystem     = errors.New("invalid system")

	ErrExecutorStopped = errors.New("executor stopped")
)

// SystemError wraps an error returned by a system.
type SystemError struct {
	Schedule Label
	System   string
	Err      error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("schedule %s: system %q: %v", e.Schedule, e.System, e.Err)
}

func (e *SystemError) Unwrap() error {
	return e.Err
}

// SystemPanic is re-raised on the goroutine running a schedule when a system
// panicked on a worker.
type SystemPanic struct {
	Schedule Label
	System   string
	Value    any
	Stack    []byte
}

func (p *SystemPanic) Error() string {
	return fmt.Sprintf("schedule %s: system %q panicked: %v\n%s", p.Schedule, p.System, p.Value, p.Stack)
}
