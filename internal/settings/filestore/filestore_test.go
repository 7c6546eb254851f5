package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-admin/storefront-admin/internal/settings"
)

func TestNew_Errors(t *testing.T) {
	_, err := New("")
	require.ErrorIs(t, err, ErrPathEmpty)

	_, err = New(filepath.Join(t.TempDir(), "settings.ini"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNew_MissingFileIsEmpty(t *testing.T) {
	b, err := New(filepath.Join(t.TempDir(), "settings.toml"))
	require.NoError(t, err)

	ok, err := b.Contains(settings.KeyCurrency)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, settings.Default(), settings.NewStore(b).Load(settings.Default()))
}

func TestBackend_RoundTrip(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings"+ext)

			b, err := New(path)
			require.NoError(t, err)

			m := settings.Default()
			m.Currency = "EUR"
			m.LowStockThreshold = 10
			m.InstallmentFee = 3.75
			m.BarcodeEnabled = true
			m.StoreName = ""

			require.NoError(t, settings.NewStore(b).Save(m))
			assert.Equal(t, path, b.Path())

			_, err = os.Stat(path)
			require.NoError(t, err)

			// a fresh backend sees what the first one synced
			reopened, err := New(path)
			require.NoError(t, err)
			assert.Equal(t, m, settings.NewStore(reopened).Load(settings.Default()))
		})
	}
}

func TestBackend_HandWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `currency = "EUR"
low_stock_threshold = "abc"
auto_lock_minutes = 30
barcode_enabled = true
installment_fee = 2.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	b, err := New(path)
	require.NoError(t, err)

	m := settings.NewStore(b).Load(settings.Default())
	assert.Equal(t, "EUR", m.Currency)
	assert.Equal(t, 5, m.LowStockThreshold)
	assert.Equal(t, 30, m.AutoLockMinutes)
	assert.True(t, m.BarcodeEnabled)
	assert.InDelta(t, 2.5, m.InstallmentFee, 0)
}

func TestBackend_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	b, err := New(path)
	require.NoError(t, err)

	store := settings.NewStore(b)
	m := settings.Default()
	m.Theme = "Dark"
	require.NoError(t, store.Save(m))

	require.NoError(t, store.Clear())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, settings.Default(), store.Load(settings.Default()))

	// clearing twice is not an error
	require.NoError(t, store.Clear())
}

func TestBackend_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := New(path)
	require.Error(t, err)
}

func TestBackend_FailedSyncKeepsPersistedState(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")
	path := filepath.Join(dir, "settings.toml")

	b, err := New(path)
	require.NoError(t, err)

	store := settings.NewStore(b)

	saved := settings.Default()
	saved.Currency = "EUR"
	require.NoError(t, store.Save(saved))

	// the directory turns into a regular file: every later write fails
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("not a directory"), 0o600))

	failed := saved
	failed.Currency = "DZD"
	failed.LowStockThreshold = 40
	require.Error(t, store.Save(failed))

	assert.Equal(t, saved, store.Load(settings.Default()))
}

func TestBackend_FailedFirstSyncLeavesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")

	b, err := New(filepath.Join(dir, "settings.yaml"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(dir, []byte("not a directory"), 0o600))

	store := settings.NewStore(b)
	m := settings.Default()
	m.Currency = "EUR"
	require.Error(t, store.Save(m))

	ok, err := b.Contains(settings.KeyCurrency)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, settings.Default(), store.Load(settings.Default()))
}

func TestBackend_StagedWritesVisibleBeforeSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	b, err := New(path)
	require.NoError(t, err)

	require.NoError(t, b.Set(settings.KeyTheme, "Dark"))

	v, err := b.Get(settings.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "Dark", v)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing is written before Sync")

	require.NoError(t, b.Sync())

	reopened, err := New(path)
	require.NoError(t, err)

	v, err = reopened.Get(settings.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "Dark", v)
}
