package ecs

import (
	"errors"
	"sync"
)

// Command is a deferred world mutation.
type Command func(*World) error

// Commands queues structural changes requested by systems. The queue is
// applied after the schedule pass that filled it, in submission order.
type Commands struct {
	mu    sync.Mutex
	queue []Command
}

func NewCommands() *Commands {
	return &Commands{}
}

func (c *Commands) Add(cmd Command) {
	c.mu.Lock()
	c.queue = append(c.queue, cmd)
	c.mu.Unlock()
}

func (c *Commands) InsertResource(res any) {
	c.Add(func(w *World) error {
		return w.InsertResource(res)
	})
}

func (c *Commands) Spawn(components ...any) {
	c.Add(func(w *World) error {
		w.Spawn(components...)
		return nil
	})
}

func (c *Commands) Despawn(e Entity) {
	c.Add(func(w *World) error {
		return w.Despawn(e)
	})
}

func (c *Commands) InsertComponent(e Entity, component any) {
	c.Add(func(w *World) error {
		return w.InsertComponent(e, component)
	})
}

// RemoveResourceCommand queues removal of the resource of type T.
func RemoveResourceCommand[T any](c *Commands) {
	c.Add(func(w *World) error {
		return RemoveResource[T](w)
	})
}

func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Apply runs and clears the queue. Every command runs even if an earlier one
// failed; the failures are joined.
func (c *Commands) Apply(w *World) error {
	c.mu.Lock()
	queue := c.queue
	c.queue = nil
	c.mu.Unlock()

	var errs []error
	for _, cmd := range queue {
		if err := cmd(w); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
