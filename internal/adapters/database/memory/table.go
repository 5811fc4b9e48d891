package memory

import (
	"sync"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
)

// table is an insertion-ordered, mutex-guarded record store keyed by ID.
// Records go in and out through clone so callers never share memory with stored rows.
type table[T any] struct {
	mu     sync.RWMutex
	entity string
	rows   map[string]T
	order  []string
	idOf   func(T) string
	clone  func(T) T
}

func newTable[T any](entity string, idOf func(T) string, clone func(T) T) *table[T] {
	return &table[T]{
		entity: entity,
		rows:   make(map[string]T),
		idOf:   idOf,
		clone:  clone,
	}
}

func (t *table[T]) notFound(id string) error {
	return apperrors.NewNotFoundError(t.entity, id)
}

// get returns a copy of the row or a not-found error.
func (t *table[T]) get(id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, t.notFound(id)
	}
	c := t.clone(row)
	return &c, nil
}

// insert adds a new row. It fails with ErrDuplicate if the ID exists or if
// clashes reports a uniqueness violation against any existing row.
func (t *table[T]) insert(row T, clashes func(existing T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.idOf(row)
	if _, exists := t.rows[id]; exists {
		return apperrors.NewDuplicateError(t.entity + " " + id + " already exists")
	}
	if clashes != nil {
		for _, existingID := range t.order {
			if clashes(t.rows[existingID]) {
				return apperrors.NewDuplicateError(t.entity + " violates a uniqueness constraint")
			}
		}
	}
	t.rows[id] = t.clone(row)
	t.order = append(t.order, id)
	return nil
}

// filter returns copies of matching rows in insertion order. Never nil.
func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range t.order {
		row := t.rows[id]
		if keep(row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

// first returns the earliest inserted matching row or a not-found error labelled with key.
func (t *table[T]) first(key string, match func(T) bool) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		row := t.rows[id]
		if match(row) {
			c := t.clone(row)
			return &c, nil
		}
	}
	return nil, t.notFound(key)
}

// pick returns copies of the rows with the given IDs, skipping unknown ones.
func (t *table[T]) pick(ids []string) map[string]T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]T, len(ids))
	for _, id := range ids {
		if row, ok := t.rows[id]; ok {
			out[id] = t.clone(row)
		}
	}
	return out
}

// update mutates a working copy of the row under the write lock and stores it
// only if mutate succeeds, so a failed update leaves the row untouched.
func (t *table[T]) update(id string, mutate func(*T) error) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, t.notFound(id)
	}
	working := t.clone(row)
	if err := mutate(&working); err != nil {
		return nil, err
	}
	t.rows[id] = t.clone(working)
	return &working, nil
}
