// store.go

package main

import "sync"

// Store is an in-memory, insertion-ordered list of records. Contents live
// only as long as the process does.
//
// When key is non-nil the store also supports lookups and upserts by key;
// otherwise it is append-only.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	key   func(T) string
}

func NewStore[T any](key func(T) string) *Store[T] {
	return &Store[T]{
		items: []T{},
		key:   key,
	}
}

// Append adds rec at the end and returns the stored record.
func (s *Store[T]) Append(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, rec)
	return rec
}

// FindIndexByKey is the read-only lookup: it returns the position of the
// first record whose key equals key, or -1 and false. Writers use UpsertByKey,
// which does the same lookup under the write lock.
func (s *Store[T]) FindIndexByKey(key string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(key)
	return i, i >= 0
}

// UpsertByKey replaces the record sharing rec's key with merge(existing, rec),
// or appends rec if there is none. It returns the stored record and whether
// an existing one was merged. The lookup and the write are atomic.
func (s *Store[T]) UpsertByKey(rec T, merge func(existing, incoming T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key != nil {
		if i := s.indexLocked(s.key(rec)); i >= 0 {
			s.items[i] = merge(s.items[i], rec)
			return s.items[i], true
		}
	}
	s.items = append(s.items, rec)
	return rec, false
}

// List returns a copy of all records in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) indexLocked(key string) int {
	if s.key == nil {
		return -1
	}
	for i, item := range s.items {
		if s.key(item) == key {
			return i
		}
	}
	return -1
}
