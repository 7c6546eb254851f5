package settings

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrBackendNil is returned when a store is used without a backend.
var ErrBackendNil = errors.New("settings backend is nil")

// Backend is a durable string-keyed key-value store.
// It knows nothing about the record shape, only about individual keys.
type Backend interface {
	Contains(key string) (bool, error)
	Get(key string) (string, error)
	Set(key, value string) error
	Sync() error
	Clear() error
}

// Batcher is implemented by backends that can scope several writes.
// Batch hands fn a backend bound to the scope; the scope is released when
// Batch returns, also when fn fails.
type Batcher interface {
	Batch(fn func(Backend) error) error
}

// Lister is implemented by backends that can enumerate their stored keys in
// one call.
type Lister interface {
	StoredKeys() ([]string, error)
}

// Store serializes a Model to and from a Backend.
type Store struct {
	backend Backend
}

// NewStore creates a store on top of backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads every field of defaults from the backend.
// Missing keys, unreadable keys and malformed values keep their default;
// only the affected field falls back.
func (s *Store) Load(defaults Model) Model {
	m := defaults

	if s == nil || s.backend == nil {
		log.Error().Err(ErrBackendNil).Msg("settings load without backend, using defaults")
		return m
	}

	for _, e := range defaults.Entries() {
		ok, err := s.backend.Contains(e.Key)
		if err != nil {
			log.Warn().Err(err).Str("key", e.Key).Msg("can't check settings key, using default")
			continue
		}

		if !ok {
			continue
		}

		raw, err := s.backend.Get(e.Key)
		if err != nil {
			log.Warn().Err(err).Str("key", e.Key).Msg("can't read settings key, using default")
			continue
		}

		v, fellBack := Coerce(e.Value, raw)
		if fellBack {
			loadFallbacks.WithLabelValues(e.Key).Inc()
			log.Debug().
				Str("key", e.Key).
				Str("raw", raw).
				Str("type", e.Type.String()).
				Msg("malformed stored settings value, using default")

			continue
		}

		// With can only fail on unknown keys or type mismatches, neither is possible here.
		m, _ = m.With(e.Key, v)
	}

	return m
}

// Save writes every field of m and syncs the backend.
// Each field write is atomic; the whole record is only atomic when the backend is a Batcher.
func (s *Store) Save(m Model) error {
	if s == nil || s.backend == nil {
		return ErrBackendNil
	}

	write := func(b Backend) error {
		for _, e := range m.Entries() {
			if err := b.Set(e.Key, e.Value.String()); err != nil {
				return fmt.Errorf("write settings key %s: %w", e.Key, err)
			}
		}

		if err := b.Sync(); err != nil {
			return fmt.Errorf("sync settings: %w", err)
		}

		return nil
	}

	if batcher, ok := s.backend.(Batcher); ok {
		return batcher.Batch(write)
	}

	return write(s.backend)
}

// Clear removes all stored entries; the next Load returns pure defaults.
func (s *Store) Clear() error {
	if s == nil || s.backend == nil {
		return ErrBackendNil
	}

	if err := s.backend.Clear(); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}

	return nil
}

// StoredKeys reports, for every settings key, whether the backend holds an
// entry for it. Keys the backend holds that are not settings keys are ignored.
func (s *Store) StoredKeys() (map[string]bool, error) {
	if s == nil || s.backend == nil {
		return nil, ErrBackendNil
	}

	out := make(map[string]bool, len(refs))
	for _, r := range refs {
		out[r.key] = false
	}

	if lister, ok := s.backend.(Lister); ok {
		keys, err := lister.StoredKeys()
		if err != nil {
			return nil, fmt.Errorf("list settings keys: %w", err)
		}

		for _, k := range keys {
			if _, known := out[k]; known {
				out[k] = true
			}
		}

		return out, nil
	}

	for _, r := range refs {
		ok, err := s.backend.Contains(r.key)
		if err != nil {
			return nil, fmt.Errorf("check settings key %s: %w", r.key, err)
		}

		out[r.key] = ok
	}

	return out, nil
}
