package daemon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/settings"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		settings config.Settings
	}{
		{name: "database", settings: config.Settings{Backend: config.BackendDatabase}},
		{name: "file", settings: config.Settings{Backend: config.BackendFile, File: filepath.Join(dir, "settings.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				DB:       config.DB{GormEngine: config.EngineSQLite, Name: filepath.Join(dir, tt.name+".db")},
				Settings: tt.settings,
			}

			store, closeStore, err := OpenStore(cfg)
			require.NoError(t, err)

			t.Cleanup(func() { require.NoError(t, closeStore()) })

			m := settings.Default()
			m.Theme = "Dark"
			require.NoError(t, store.Save(m))
			assert.Equal(t, m, store.Load(settings.Default()))
		})
	}
}

func TestOpenStore_Errors(t *testing.T) {
	_, closeStore, err := OpenStore(&config.Config{Settings: config.Settings{Backend: "registry"}})
	require.ErrorIs(t, err, config.ErrUnknownSettingsBackend)
	require.NoError(t, closeStore())

	_, _, err = OpenStore(&config.Config{Settings: config.Settings{Backend: config.BackendFile, File: "settings.ini"}})
	require.Error(t, err)
}
