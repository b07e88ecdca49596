// Package store defines the key-value storage the resume form persists into.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("store: key not found")

// Storage is a synchronous string key-value store scoped to one user.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Clear() error
}

// Memory is an in-process Storage. It backs tests and dry runs.
type Memory struct {
	mu   sync.Mutex
	data map[string]string

	// FailWrites makes every Set fail with this error when non-nil.
	FailWrites error
}

func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string]string{}
	return nil
}
