package settings

import "sync"

// MemoryBackend is a volatile Backend. Sync is a no-op.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryBackend creates an empty memory backend, optionally seeded with entries.
func NewMemoryBackend(seed map[string]string) *MemoryBackend {
	b := &MemoryBackend{data: make(map[string]string, len(seed))}
	for k, v := range seed {
		b.data[k] = v
	}

	return b
}

// Contains implements Backend.
func (b *MemoryBackend) Contains(key string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.data[key]

	return ok, nil
}

// Get implements Backend.
func (b *MemoryBackend) Get(key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.data[key], nil
}

// Set implements Backend.
func (b *MemoryBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = value

	return nil
}

// Sync implements Backend.
func (b *MemoryBackend) Sync() error { return nil }

// Clear implements Backend.
func (b *MemoryBackend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data = make(map[string]string)

	return nil
}

// Snapshot returns a copy of all entries.
func (b *MemoryBackend) Snapshot() map[string]string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]string, len(b.data))
	for k, v := range b.data {
		out[k] = v
	}

	return out
}
