package repository

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("entity not found")
)

// Store is an in-memory collection of entities keyed by a generated ID.
// Entities are kept in insertion order. Callers receive copies, never the
// stored values, so every mutation goes through Update. Entities holding
// slices or maps need a clone func set with WithClone for that to hold.
type Store[T any] struct {
	mu       sync.RWMutex
	items    []T
	ids      IDGenerator
	getID    func(*T) string
	assignID func(*T, string)
	clone    func(T) T
}

// NewStore creates an empty store. getID and assignID read and write the
// entity's ID field.
func NewStore[T any](ids IDGenerator, getID func(*T) string, assignID func(*T, string)) *Store[T] {
	return &Store[T]{
		items:    make([]T, 0),
		ids:      ids,
		getID:    getID,
		assignID: assignID,
	}
}

// WithClone sets the deep copy applied whenever an entity enters or leaves
// the store
func (s *Store[T]) WithClone(clone func(T) T) *Store[T] {
	s.clone = clone
	return s
}

func (s *Store[T]) copyOf(item T) T {
	if s.clone == nil {
		return item
	}
	return s.clone(item)
}

// Seed appends entities that already carry an ID
func (s *Store[T]) Seed(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.items = append(s.items, s.copyOf(item))
	}
}

// List returns a snapshot of every entity
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = s.copyOf(item)
	}
	return out, nil
}

// Find returns the entity with the given ID
func (s *Store[T]) Find(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	return s.copyOf(s.items[i]), nil
}

// Create assigns a fresh ID to item and appends it
func (s *Store[T]) Create(ctx context.Context, item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignID(&item, s.ids.NextID())
	s.items = append(s.items, s.copyOf(item))
	return item, nil
}

// Update applies mutate to the stored entity. The ID is restored after
// mutate runs, so it can never change.
func (s *Store[T]) Update(ctx context.Context, id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	item := s.copyOf(s.items[i])
	mutate(&item)
	s.assignID(&item, id)
	s.items[i] = s.copyOf(item)
	return item, nil
}

// Delete removes the entity with the given ID
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Len returns the number of stored entities
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) indexOf(id string) int {
	for i := range s.items {
		if s.getID(&s.items[i]) == id {
			return i
		}
	}
	return -1
}
