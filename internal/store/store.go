// Package store implements the per-resource CRUD state containers
// synchronized with the remote API. One Store instance exists per
// entity type; all five share the same contract.
package store

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"portfolio-admin/internal/api"
)

// Resource describes how a store maps onto its REST collection.
type Resource[T any] struct {
	// Path is the collection path, e.g. "/api/blogs".
	Path string
	// ID extracts an entity's identifier as a string.
	ID func(T) string
}

// Store holds the in-memory collection for one resource. The server
// response is ground truth: no optimistic mutation is applied before a
// round trip completes, so failures leave the collection untouched.
//
// The lock is held only to read or apply state, never across a network
// call; concurrent mutations for different ids race independently and
// the last to resolve wins per id.
type Store[T any] struct {
	client *api.Client
	res    Resource[T]

	mu      sync.Mutex
	items   []T
	current *T
	loading bool
	lastErr string
}

func New[T any](client *api.Client, res Resource[T]) *Store[T] {
	return &Store[T]{client: client, res: res}
}

// FetchAll replaces the entire collection with the server's ordered
// sequence. No merging.
func (s *Store[T]) FetchAll(ctx context.Context) error {
	s.begin()

	var fetched []T
	if err := s.client.Do(ctx, http.MethodGet, s.res.Path, nil, &fetched); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.items = fetched
	s.loading = false
	s.mu.Unlock()
	return nil
}

// FetchByID loads one entity and makes it current.
func (s *Store[T]) FetchByID(ctx context.Context, id string) (T, error) {
	s.begin()

	var entity T
	if err := s.client.Do(ctx, http.MethodGet, s.res.Path+"/"+id, nil, &entity); err != nil {
		s.fail(err)
		return entity, err
	}

	s.mu.Lock()
	s.current = &entity
	s.loading = false
	s.mu.Unlock()
	return entity, nil
}

// Create sends the draft to the server and prepends the returned
// entity, which carries the server-assigned id.
func (s *Store[T]) Create(ctx context.Context, req interface{}) (T, error) {
	s.begin()

	var created T
	if err := s.client.Do(ctx, http.MethodPost, s.res.Path, req, &created); err != nil {
		s.fail(err)
		return created, err
	}

	s.mu.Lock()
	s.items = append([]T{created}, s.items...)
	s.loading = false
	s.mu.Unlock()
	return created, nil
}

// Update replaces the matching entity in place by id. If it is also
// the current entity, current follows; otherwise current is untouched.
func (s *Store[T]) Update(ctx context.Context, id string, req interface{}) (T, error) {
	s.begin()

	var updated T
	if err := s.client.Do(ctx, http.MethodPut, s.res.Path+"/"+id, req, &updated); err != nil {
		s.fail(err)
		return updated, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.res.ID(s.items[i]) == id {
			s.items[i] = updated
			break
		}
	}
	if s.current != nil && s.res.ID(*s.current) == id {
		s.current = &updated
	}
	s.loading = false
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the entity by id and clears current if it matched.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	s.begin()

	if err := s.client.Do(ctx, http.MethodDelete, s.res.Path+"/"+id, nil, nil); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if s.res.ID(item) != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	if s.current != nil && s.res.ID(*s.current) == id {
		s.current = nil
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Items returns the collection in listing order.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// Current returns the selected entity, or nil.
func (s *Store[T]) Current() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	entity := *s.current
	return &entity
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store[T]) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store[T]) ClearCurrent() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Store[T]) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store[T]) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.lastErr = api.ErrorMessage(err)
	s.mu.Unlock()
}

// failf records a store-local failure not originating from the client.
func (s *Store[T]) failf(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	s.fail(err)
	return err
}
