package ecs

import "fmt"

// Each calls fn for every entity holding a component of type A, in entity
// index order. fn runs without the world lock held, so it may use Commands or
// read other world state.
func Each[A any](w *World, fn func(Entity, A)) {
	ta := TypeOf[A]()
	type row struct {
		e Entity
		a A
	}

	w.mu.RLock()
	entities := w.entitiesWith(ta)
	rows := make([]row, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, row{e, w.components[ta][e.Index].(A)})
	}
	w.mu.RUnlock()

	for _, r := range rows {
		fn(r.e, r.a)
	}
}

// Each2 calls fn for every entity holding both A and B.
func Each2[A, B any](w *World, fn func(Entity, A, B)) {
	ta, tb := TypeOf[A](), TypeOf[B]()
	type row struct {
		e Entity
		a A
		b B
	}

	w.mu.RLock()
	entities := w.entitiesWith(ta, tb)
	rows := make([]row, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, row{e, w.components[ta][e.Index].(A), w.components[tb][e.Index].(B)})
	}
	w.mu.RUnlock()

	for _, r := range rows {
		fn(r.e, r.a, r.b)
	}
}

// Count returns the number of entities holding a component of type A.
func Count[A any](w *World) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.components[TypeOf[A]()])
}

// Single returns the only entity holding A.
func Single[A any](w *World) (Entity, A, error) {
	var (
		found Entity
		value A
		n     int
	)
	Each(w, func(e Entity, a A) {
		found, value = e, a
		n++
	})
	if n != 1 {
		var zero A
		return Entity{}, zero, fmt.Errorf("%w: %s matched %d", ErrNotSingle, TypeOf[A](), n)
	}
	return found, value, nil
}

// Single2 returns the only entity holding both A and B.
func Single2[A, B any](w *World) (Entity, A, B, error) {
	var (
		found Entity
		va    A
		vb    B
		n     int
	)
	Each2(w, func(e Entity, a A, b B) {
		found, va, vb = e, a, b
		n++
	})
	if n != 1 {
		var za A
		var zb B
		return Entity{}, za, zb, fmt.Errorf("%w: (%s, %s) matched %d", ErrNotSingle, TypeOf[A](), TypeOf[B](), n)
	}
	return found, va, vb, nil
}
