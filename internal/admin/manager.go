// Package admin implements the editing workflows behind the admin
// panel: list filtering, pre-submission validation and delegation to
// the resource stores.
package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"portfolio-admin/internal/domain"
	"portfolio-admin/internal/store"
)

// ValidationError is a client-local failure: the draft never reached
// the network and no store state changed.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Search filters items to those with at least one searchable field
// containing the query, case-insensitively. An empty query keeps
// everything.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	var matched []T
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), q) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// Manager is the shared workflow for one resource: search its store's
// listing, validate drafts locally, and save or delete through the
// store. Req is the create/update payload type.
type Manager[T any, Req any] struct {
	store    *store.Store[T]
	validate *validator.Validate
	fields   func(T) []string
}

func NewManager[T any, Req any](s *store.Store[T], fields func(T) []string) *Manager[T, Req] {
	return &Manager[T, Req]{
		store:    s,
		validate: domain.NewValidator(),
		fields:   fields,
	}
}

func (m *Manager[T, Req]) Store() *store.Store[T] {
	return m.store
}

func (m *Manager[T, Req]) Search(query string) []T {
	return Search(m.store.Items(), query, m.fields)
}

// Save validates the draft and creates (empty id) or updates it.
// Validation failures block the call entirely; nothing is submitted.
func (m *Manager[T, Req]) Save(ctx context.Context, id string, req Req) (T, error) {
	if err := m.validate.Struct(req); err != nil {
		var zero T
		return zero, &ValidationError{msg: validationMessage(err)}
	}

	if id == "" {
		return m.store.Create(ctx, req)
	}
	return m.store.Update(ctx, id, req)
}

func (m *Manager[T, Req]) Delete(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

// validationMessage flattens validator output into the single blocking
// message the UI shows; fields are not mapped individually.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		names := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			names = append(names, fe.Field())
		}
		return "Please fill in all required fields: " + strings.Join(names, ", ")
	}
	return err.Error()
}
