package ecs

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/kiln/engine/core"
)

// World owns every resource and entity of an application. Systems receive it
// through their Context; nothing in the engine reaches it through globals.
type World struct {
	id uuid.UUID

	mu         sync.RWMutex
	resources  map[reflect.Type]*resourceCell
	entities   entityAllocator
	components map[reflect.Type]map[uint32]any
}

func NewWorld() *World {
	return &World{
		id:         uuid.New(),
		resources:  make(map[reflect.Type]*resourceCell),
		components: make(map[reflect.Type]map[uint32]any),
	}
}

// ID identifies the world in log lines.
func (w *World) ID() uuid.UUID {
	return w.id
}

// InsertResource stores res keyed by its dynamic type, replacing any resource
// of the same type. Outstanding borrows keep referring to the replaced value.
func (w *World) InsertResource(res any) error {
	if res == nil {
		return ErrNilResource
	}
	t := reflect.TypeOf(res)

	w.mu.Lock()
	_, replaced := w.resources[t]
	w.resources[t] = &resourceCell{value: res}
	w.mu.Unlock()

	if replaced {
		core.LogDebug("world %s: resource %s overwritten", w.id, t)
	}
	return nil
}

// HasResourceType reports whether a resource of type t is stored.
func (w *World) HasResourceType(t reflect.Type) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.resources[t]
	return ok
}

// ResourceCount returns the number of stored resources.
func (w *World) ResourceCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.resources)
}

func (w *World) cell(t reflect.Type) (*resourceCell, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.resources[t]
	return c, ok
}

func (w *World) removeResource(t reflect.Type) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.resources[t]
	if !ok {
		return notFound(t)
	}
	if c.borrowed() {
		return borrowed(t)
	}
	delete(w.resources, t)
	return nil
}

// UpdateEvents advances every registered event queue by one frame. The App
// calls it once per frame before PreUpdate.
func (w *World) UpdateEvents() {
	w.mu.RLock()
	queues := make([]eventUpdater, 0)
	for _, c := range w.resources {
		if u, ok := c.value.(eventUpdater); ok {
			queues = append(queues, u)
		}
	}
	w.mu.RUnlock()

	for _, q := range queues {
		q.update()
	}
}
