package ecs

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Entity is a generational index into the world's entity arena.
type Entity struct {
	Index      uint32
	Generation uint32
}

func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.Index, e.Generation)
}

type entityAllocator struct {
	generations []uint32
	alive       []bool
	free        []uint32
	count       int
}

func (a *entityAllocator) acquire() Entity {
	a.count++
	// Existing free spot. Take it.
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.alive[idx] = true
		return Entity{Index: idx, Generation: a.generations[idx]}
	}

	// No free slots, push a new one.
	a.generations = append(a.generations, 0)
	a.alive = append(a.alive, true)
	return Entity{Index: uint32(len(a.alive) - 1)}
}

func (a *entityAllocator) release(e Entity) bool {
	if !a.isAlive(e) {
		return false
	}
	a.alive[e.Index] = false
	a.generations[e.Index]++
	a.free = append(a.free, e.Index)
	a.count--
	return true
}

func (a *entityAllocator) isAlive(e Entity) bool {
	return int(e.Index) < len(a.alive) && a.alive[e.Index] && a.generations[e.Index] == e.Generation
}

// Spawn creates an entity carrying the given components.
func (w *World) Spawn(components ...any) Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	e := w.entities.acquire()
	for _, c := range components {
		if c == nil {
			continue
		}
		w.setComponent(e, c)
	}
	return e
}

// Despawn removes the entity and every component it carries. The index is
// recycled with a new generation so stale handles stop resolving.
func (w *World) Despawn(e Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.entities.release(e) {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, e)
	}
	for _, column := range w.components {
		delete(column, e.Index)
	}
	return nil
}

func (w *World) Alive(e Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.entities.isAlive(e)
}

func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.entities.count
}

// InsertComponent attaches c to e, replacing a component of the same type.
func (w *World) InsertComponent(e Entity, c any) error {
	if c == nil {
		return ErrNilComponent
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, e)
	}
	w.setComponent(e, c)
	return nil
}

func (w *World) setComponent(e Entity, c any) {
	t := reflect.TypeOf(c)
	column, ok := w.components[t]
	if !ok {
		column = make(map[uint32]any)
		w.components[t] = column
	}
	column[e.Index] = c
}

// Component returns the component of type T attached to e.
func Component[T any](w *World, e Entity) (T, error) {
	var zero T
	t := TypeOf[T]()
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.entities.isAlive(e) {
		return zero, fmt.Errorf("%w: %s", ErrEntityNotFound, e)
	}
	c, ok := w.components[t][e.Index]
	if !ok {
		return zero, fmt.Errorf("%w: %s on %s", ErrComponentNotFound, t, e)
	}
	return c.(T), nil
}

func RemoveComponent[T any](w *World, e Entity) error {
	t := TypeOf[T]()
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, e)
	}
	column := w.components[t]
	if _, ok := column[e.Index]; !ok {
		return fmt.Errorf("%w: %s on %s", ErrComponentNotFound, t, e)
	}
	delete(column, e.Index)
	return nil
}

// entitiesWith returns, in index order, the live entities holding every type.
// Callers must hold w.mu.
func (w *World) entitiesWith(types ...reflect.Type) []Entity {
	if len(types) == 0 {
		return nil
	}
	first := w.components[types[0]]
	out := make([]Entity, 0, len(first))
	for idx := range first {
		matched := true
		for _, t := range types[1:] {
			if _, ok := w.components[t][idx]; !ok {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, Entity{Index: idx, Generation: w.entities.generations[idx]})
		}
	}
	slices.SortFunc(out, func(a, b Entity) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return out
}
