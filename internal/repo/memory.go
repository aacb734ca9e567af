package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// NewMemory builds a map-backed Repo with the same filter semantics
// as the mongo one. Used by tests and by single-process tooling.
// idOf must return a pointer to the record's id field.
func NewMemory[T any](idOf func(*T) *string) *Memory[T] {
	return &Memory[T]{
		docs: make(map[string]T),
		idOf: idOf,
	}
}

type Memory[T any] struct {
	mu   sync.RWMutex
	docs map[string]T
	idOf func(*T) *string
}

func (m *Memory[T]) Insert(_ context.Context, data T) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.idOf(&data)
	if *id == "" {
		*id = uuid.New().String()
	}

	m.docs[*id] = data
	return *id, nil
}

func (m *Memory[T]) Select(_ context.Context, filters ...Filter) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f := apply(filters)

	var selected []T
	for id, item := range m.docs {
		if f.matches(id, item) {
			selected = append(selected, item)
		}
	}
	return selected, nil
}

func (m *Memory[T]) Update(_ context.Context, mutate func(*T), filters ...Filter) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := apply(filters)

	for id, item := range m.docs {
		if !f.matches(id, item) {
			continue
		}
		mutate(&item)
		m.docs[id] = item
	}
	return nil
}

func (m *Memory[T]) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.docs[id]
	delete(m.docs, id)
	return ok, nil
}

func (f filter) matches(id string, item any) bool {
	if f.id != nil && *f.id != id {
		return false
	}
	if f.exclude != nil && *f.exclude == id {
		return false
	}
	if len(f.fields) > 0 && !fieldsMatch(f.fields, item) {
		return false
	}
	if f.fn != nil && !f.fn(item) {
		return false
	}
	return true
}

// fieldsMatch compares through a bson round trip so that field names
// mean the same thing here and in the mongo implementation.
func fieldsMatch(fields map[string]any, item any) bool {
	doc, err := toDoc(item)
	if err != nil {
		return false
	}

	for name, want := range fields {
		got, ok := doc[name]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

// NopTxn runs transactions by plain invocation. For tests and
// tooling that work against a Memory repo.
func NopTxn() TxnRunner { return nopTxn{} }

type nopTxn struct{}

func (nopTxn) Txn(ctx context.Context, do func(ctx context.Context) error) error {
	return do(ctx)
}
