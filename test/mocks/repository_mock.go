// Package mocks provides hand-written implementations of the core ports for
// tests, with call tracking and error injection.
package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
)

// MockKeyValueStore is an in-memory ports.KeyValueStore whose operations can
// be made to fail.
type MockKeyValueStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetCalls []string
	SetCalls []string
	DelCalls []string
	// TTLs holds the ttl of the most recent write per key.
	TTLs map[string]time.Duration

	GetError  error
	SetError  error
	DelError  error
	KeysError error
	PingError error
}

var _ ports.KeyValueStore = (*MockKeyValueStore)(nil)

func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{data: make(map[string][]byte), TTLs: make(map[string]time.Duration)}
}

// Seed stores a raw value, bypassing error injection.
func (m *MockKeyValueStore) Seed(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = []byte(value)
}

// Raw returns the stored value and whether the key exists.
func (m *MockKeyValueStore) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return string(v), ok
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, key)
	if m.GetError != nil {
		return nil, m.GetError
	}
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MockKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	return m.SetWithTTL(ctx, key, value, 0)
}

func (m *MockKeyValueStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, key)
	if m.SetError != nil {
		return m.SetError
	}
	m.data[key] = append([]byte(nil), value...)
	m.TTLs[key] = ttl
	return nil
}

func (m *MockKeyValueStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DelCalls = append(m.DelCalls, key)
	if m.DelError != nil {
		return m.DelError
	}
	delete(m.data, key)
	return nil
}

func (m *MockKeyValueStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.KeysError != nil {
		return nil, m.KeysError
	}
	keys := make([]string, 0)
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockKeyValueStore) Ping(ctx context.Context) error {
	return m.PingError
}
