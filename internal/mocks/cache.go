package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
)

// CacheMock is an in-memory cache.Cache that ignores TTLs.
type CacheMock struct {
	lock sync.Mutex

	Entries map[string][]byte
	TTLs    map[string]time.Duration
	Deleted []string
	Err     error
}

func NewCacheMock() *CacheMock {
	return &CacheMock{
		Entries: map[string][]byte{},
		TTLs:    map[string]time.Duration{},
	}
}

var _ cache.Cache = (*CacheMock)(nil)

func (m *CacheMock) Get(_ context.Context, key string) ([]byte, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	v, ok := m.Entries[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (m *CacheMock) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Entries[key] = value
	m.TTLs[key] = ttl
	return nil
}

func (m *CacheMock) Delete(_ context.Context, keys ...string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Deleted = append(m.Deleted, keys...)
	if m.Err != nil {
		return m.Err
	}
	for _, k := range keys {
		delete(m.Entries, k)
	}
	return nil
}

func (m *CacheMock) Has(key string) bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	_, ok := m.Entries[key]
	return ok
}
