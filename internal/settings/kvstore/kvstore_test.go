package kvstore

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-admin/storefront-admin/internal/settings"
)

// testStorage is a minimal in-memory Storage that, like the SQL drivers,
// ignores writes with an empty key or value.
type testStorage struct {
	mu     sync.RWMutex
	data   map[string][]byte
	getErr error
	closed bool
}

var _ Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.getErr != nil {
		return nil, s.getErr
	}

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(key) == 0 || len(val) == 0 {
		return nil
	}

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error {
	s.closed = true
	return nil
}

func TestBackend_RoundTripKeepsEmptyStrings(t *testing.T) {
	storage := &testStorage{}
	store := settings.NewStore(New(storage))

	m := settings.Default()
	m.StoreName = ""
	m.Currency = "DZD"
	m.LowStockThreshold = 0
	m.ShowSalesTrend = false

	require.NoError(t, store.Save(m))
	assert.Equal(t, m, store.Load(settings.Default()))
	assert.Equal(t, `""`, string(storage.data[settings.KeyStoreName]))
}

func TestBackend_ForeignValues(t *testing.T) {
	storage := &testStorage{data: map[string][]byte{
		settings.KeyLowStockThreshold: []byte("12"),
		settings.KeyCurrency:          []byte(`"EUR"`),
		settings.KeyInstallmentFee:    []byte("garbage"),
	}}

	m := settings.NewStore(New(storage)).Load(settings.Default())
	assert.Equal(t, 12, m.LowStockThreshold)
	assert.Equal(t, "EUR", m.Currency)
	assert.InDelta(t, 15.0, m.InstallmentFee, 0)
}

func TestBackend_ClearAndClose(t *testing.T) {
	storage := &testStorage{}
	backend := New(storage)
	store := settings.NewStore(backend)

	require.NoError(t, store.Save(settings.Default()))
	require.NoError(t, store.Clear())
	assert.Empty(t, storage.data)

	require.NoError(t, backend.Close())
	assert.True(t, storage.closed)
}

func TestBackend_StorageErrors(t *testing.T) {
	errDown := errors.New("storage down")
	backend := New(&testStorage{getErr: errDown})

	_, err := backend.Contains(settings.KeyTheme)
	require.ErrorIs(t, err, errDown)

	_, err = backend.Get(settings.KeyTheme)
	require.ErrorIs(t, err, errDown)
}

func TestBackend_NilStorage(t *testing.T) {
	backend := New(nil)

	_, err := backend.Contains("x")
	require.ErrorIs(t, err, ErrStorageNil)
	require.ErrorIs(t, backend.Set("x", "y"), ErrStorageNil)
	require.ErrorIs(t, backend.Sync(), ErrStorageNil)
	require.ErrorIs(t, backend.Clear(), ErrStorageNil)
	require.NoError(t, backend.Close())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("redis", "redis://localhost", "")
	require.ErrorIs(t, err, ErrUnknownDriver)
}
