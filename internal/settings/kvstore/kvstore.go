// Package kvstore adapts a gofiber storage driver to a settings backend.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/storage/mysql/v2"
	"github.com/gofiber/storage/postgres/v3"

	"github.com/storefront-admin/storefront-admin/internal/settings"
)

// DefaultTable is the table used by the SQL storage drivers.
const DefaultTable = "storefront_settings"

var (
	// ErrStorageNil is returned when the backend has no storage driver.
	ErrStorageNil = errors.New("settings storage is nil")
	// ErrUnknownDriver is returned for drivers other than mysql and postgres.
	ErrUnknownDriver = errors.New("unknown settings storage driver")
)

// Storage is the subset of the gofiber storage interface the backend needs.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
	Reset() error
	Close() error
}

// Backend stores each settings key as one storage entry holding the JSON
// encoded string value. Encoding keeps empty strings, which most drivers
// silently refuse to write.
type Backend struct {
	storage Storage
}

var _ settings.Backend = (*Backend)(nil)

// New wraps storage.
func New(storage Storage) *Backend {
	return &Backend{storage: storage}
}

// Open creates a backend on one of the supported SQL drivers.
func Open(driver, connectionURI, table string) (*Backend, error) {
	if table == "" {
		table = DefaultTable
	}

	switch driver {
	case "mysql":
		return New(mysql.New(mysql.Config{
			ConnectionURI: connectionURI,
			Table:         table,
		})), nil
	case "postgres":
		return New(postgres.New(postgres.Config{
			ConnectionURI: connectionURI,
			Table:         table,
		})), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Contains implements settings.Backend.
func (b *Backend) Contains(key string) (bool, error) {
	raw, err := b.get(key)
	if err != nil {
		return false, err
	}

	return raw != nil, nil
}

// Get implements settings.Backend.
func (b *Backend) Get(key string) (string, error) {
	raw, err := b.get(key)
	if err != nil || raw == nil {
		return "", err
	}

	var value string
	if err = json.Unmarshal(raw, &value); err != nil {
		// written by something else: hand the bytes to coercion as they are
		return string(raw), nil //nolint:nilerr
	}

	return value, nil
}

// Set implements settings.Backend. Entries never expire.
func (b *Backend) Set(key, value string) error {
	if b.storage == nil {
		return ErrStorageNil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return b.storage.Set(key, raw, 0)
}

// Sync implements settings.Backend. The SQL drivers write through.
func (b *Backend) Sync() error {
	if b.storage == nil {
		return ErrStorageNil
	}

	return nil
}

// Clear implements settings.Backend.
func (b *Backend) Clear() error {
	if b.storage == nil {
		return ErrStorageNil
	}

	return b.storage.Reset()
}

// Close releases the storage driver.
func (b *Backend) Close() error {
	if b.storage == nil {
		return nil
	}

	return b.storage.Close()
}

func (b *Backend) get(key string) ([]byte, error) {
	if b.storage == nil {
		return nil, ErrStorageNil
	}

	raw, err := b.storage.Get(key)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, nil
	}

	return raw, nil
}
