package ecs

import "sync"

type eventUpdater interface {
	update()
}

type eventInstance[T any] struct {
	id    uint64
	event T
}

// Events is a double-buffered queue of events of type T, stored in the World
// as a resource. Events sent during a frame stay readable for that frame and
// the next one; every EventReader sees each event once.
type Events[T any] struct {
	mu     sync.RWMutex
	older  []eventInstance[T]
	newer  []eventInstance[T]
	nextID uint64
}

func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

func (e *Events[T]) Send(event T) {
	e.mu.Lock()
	e.newer = append(e.newer, eventInstance[T]{id: e.nextID, event: event})
	e.nextID++
	e.mu.Unlock()
}

// Len returns the number of events currently buffered.
func (e *Events[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.older) + len(e.newer)
}

// Clear drops every buffered event.
func (e *Events[T]) Clear() {
	e.mu.Lock()
	e.older = e.older[:0]
	e.newer = e.newer[:0]
	e.mu.Unlock()
}

// update swaps the buffers, dropping events sent two frames ago.
func (e *Events[T]) update() {
	e.mu.Lock()
	e.older, e.newer = e.newer, e.older[:0]
	e.mu.Unlock()
}

// EventReader tracks which events of a queue it has already returned. A
// system keeps its reader across frames, usually in its closure.
type EventReader[T any] struct {
	next uint64
}

func NewEventReader[T any]() *EventReader[T] {
	return &EventReader[T]{}
}

// Read returns the events sent since the previous Read, oldest first.
func (r *EventReader[T]) Read(events *Events[T]) []T {
	events.mu.RLock()
	defer events.mu.RUnlock()

	out := make([]T, 0, len(events.older)+len(events.newer))
	for _, buf := range [][]eventInstance[T]{events.older, events.newer} {
		for _, inst := range buf {
			if inst.id >= r.next {
				out = append(out, inst.event)
			}
		}
	}
	r.next = events.nextID
	return out
}

// Send queues an event on the Events[T] resource of w.
func Send[T any](w *World, event T) error {
	events, err := Resource[*Events[T]](w)
	if err != nil {
		return err
	}
	events.Send(event)
	return nil
}
