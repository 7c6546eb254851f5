// Package filestore keeps settings in a local TOML, YAML or JSON file managed by viper.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/storefront-admin/storefront-admin/internal/settings"
)

var (
	// ErrPathEmpty is returned when no file path was given.
	ErrPathEmpty = errors.New("settings file path cannot be empty")
	// ErrUnsupportedFormat is returned for file extensions viper can't write.
	ErrUnsupportedFormat = errors.New("unsupported settings file format")
)

var supportedExt = map[string]struct{}{
	".toml": {},
	".yaml": {},
	".yml":  {},
	".json": {},
}

// Backend is a settings.Backend persisted in a single file.
// Set stages a write; Sync writes the whole file by rename. v always holds
// what the file holds: staged writes only reach it after a successful Sync
// and are dropped when Sync fails.
type Backend struct {
	mu      sync.Mutex
	path    string
	v       *viper.Viper
	pending map[string]string
}

var _ settings.Backend = (*Backend)(nil)

// New opens the settings file at path. A missing file is an empty store.
func New(path string) (*Backend, error) {
	if path == "" {
		return nil, ErrPathEmpty
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := supportedExt[ext]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	b := &Backend{path: path, v: newViper(path)}

	if err := b.v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read settings file %s: %w", path, err)
			}
		}
	}

	return b, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)

	return v
}

// Path returns the settings file location.
func (b *Backend) Path() string {
	return b.path
}

// Contains implements settings.Backend.
func (b *Backend) Contains(key string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.pending[key]; ok {
		return true, nil
	}

	return b.v.IsSet(key), nil
}

// Get implements settings.Backend. Non-string values written by hand are
// rendered as strings, so they go through the same coercion as stored text.
func (b *Backend) Get(key string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if value, ok := b.pending[key]; ok {
		return value, nil
	}

	return b.v.GetString(key), nil
}

// Set implements settings.Backend.
func (b *Backend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pending == nil {
		b.pending = make(map[string]string)
	}

	b.pending[key] = value

	return nil
}

// Sync implements settings.Backend. The file is written to a temp file in the
// same directory first and renamed over the original. Staged writes are
// dropped whether the write succeeds or not.
func (b *Backend) Sync() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	staged := newViper(b.path)
	if err := staged.MergeConfigMap(b.v.AllSettings()); err != nil {
		b.pending = nil
		return fmt.Errorf("stage settings: %w", err)
	}

	for key, value := range b.pending {
		staged.Set(key, value)
	}

	b.pending = nil

	if err := write(staged, b.path); err != nil {
		return err
	}

	b.v = staged

	return nil
}

func write(v *viper.Viper, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil { //nolint:mnd
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}

	tmpName := tmp.Name()
	_ = tmp.Close()

	if err = v.WriteConfigAs(tmpName); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write settings file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

// Clear implements settings.Backend. It drops all entries and removes the file.
func (b *Backend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = nil

	if err := os.Remove(b.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove settings file: %w", err)
	}

	b.v = newViper(b.path)

	return nil
}
