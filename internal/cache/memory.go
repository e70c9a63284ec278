// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"sync"
	"time"

	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

// Memory is an in-process Store for tests and cache-less configurations.
type Memory struct {
	mu      sync.RWMutex
	entries map[memoryKey]memoryEntry
	ttl     time.Duration

	now func() time.Time
}

type memoryKey struct {
	task        types.TaskName
	fingerprint string
}

type memoryEntry struct {
	payload   []byte
	createdAt time.Time
}

// NewMemory returns an empty in-memory Store. A zero ttl uses DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		entries: make(map[memoryKey]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached payload, reporting a miss for expired entries.
func (m *Memory) Get(task types.TaskName, fingerprint string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[memoryKey{task, fingerprint}]
	if !ok || m.now().Sub(e.createdAt) > m.ttl {
		return nil, false
	}
	return e.payload, true
}

// Put stores the payload, superseding any previous entry.
func (m *Memory) Put(task types.TaskName, fingerprint string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[memoryKey{task, fingerprint}] = memoryEntry{payload: payload, createdAt: m.now()}
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// Disabled is a Store that never hits and discards writes.
type Disabled struct{}

func (Disabled) Get(types.TaskName, string) ([]byte, bool) { return nil, false }
func (Disabled) Put(types.TaskName, string, []byte)        {}
func (Disabled) Close() error                              { return nil }
