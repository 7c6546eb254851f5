package setting

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/db/models"
	"github.com/storefront-admin/storefront-admin/internal/settings"
)

// setupTestDB creates a SQLite database in a temp dir for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "settings.db")), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedSettings inserts test data into the database.
func seedSettings(t *testing.T, db *gorm.DB, rows []models.Setting) {
	t.Helper()
	for _, row := range rows {
		err := db.Create(&row).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingName   string
		seedData      []models.Setting
		expectedError error
		expectedValue string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			settingName:   "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			settingName:   "",
			expectedError: ErrSettingNameEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			settingName:   "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:        "successful get",
			dbParam:     db,
			settingName: "store_name",
			seedData: []models.Setting{
				{Name: "store_name", Value: "Corner Shop"},
			},
			expectedValue: "Corner Shop",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			setting, err := Get(tc.dbParam, tc.settingName)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, setting)
			} else {
				require.NoError(t, err)
				require.NotNil(t, setting)
				assert.Equal(t, tc.settingName, setting.Name)
				assert.Equal(t, tc.expectedValue, setting.Value)
			}
		})
	}
}

func TestSet(t *testing.T) {
	db := setupTestDB(t)

	created, err := Set(db, "currency", "USD")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := Set(db, "currency", "EUR")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "EUR", updated.Value)

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Where("name = ?", "currency").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// empty values are real values
	_, err = Set(db, "logo_path", "")
	require.NoError(t, err)

	ok, err := Exists(db, "logo_path")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Set(nil, "currency", "USD")
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Set(db, "", "USD")
	require.ErrorIs(t, err, ErrSettingNameEmpty)
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		{Name: "theme", Value: "Dark"},
		{Name: "currency", Value: "EUR"},
	})

	all, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "currency", all[0].Name)
	assert.Equal(t, "theme", all[1].Name)

	_, err = GetAll(nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestExists(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{{Name: "theme", Value: "Dark"}})

	ok, err := Exists(db, "theme")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(db, "language")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Exists(db, "")
	require.ErrorIs(t, err, ErrSettingNameEmpty)

	_, err = Exists(nil, "theme")
	require.ErrorIs(t, err, ErrDBNil)
}

func TestDeleteAll(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		{Name: "theme", Value: "Dark"},
		{Name: "currency", Value: "EUR"},
	})

	require.NoError(t, DeleteAll(db))

	all, err := GetAll(db)
	require.NoError(t, err)
	assert.Empty(t, all)

	// clearing an empty table is fine
	require.NoError(t, DeleteAll(db))
	require.ErrorIs(t, DeleteAll(nil), ErrDBNil)
}

func TestBackend_StoredKeys(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		{Name: "theme", Value: "Dark"},
		{Name: "currency", Value: "EUR"},
	})

	backend := NewBackend(db)

	keys, err := backend.StoredKeys()
	require.NoError(t, err)
	assert.Equal(t, []string{"currency", "theme"}, keys)

	stored, err := settings.NewStore(backend).StoredKeys()
	require.NoError(t, err)
	assert.True(t, stored[settings.KeyCurrency])
	assert.True(t, stored[settings.KeyTheme])
	assert.False(t, stored[settings.KeyLanguage])

	_, err = NewBackend(nil).StoredKeys()
	require.ErrorIs(t, err, ErrDBNil)
}

func TestBackend_StoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := settings.NewStore(NewBackend(db))

	assert.Equal(t, settings.Default(), store.Load(settings.Default()))

	m := settings.Default()
	m.Currency = "EUR"
	m.LowStockThreshold = 10
	m.StoreName = ""
	m.InstallmentFee = 12.5
	m.NotifyLowStock = false

	require.NoError(t, store.Save(m))
	assert.Equal(t, m, store.Load(settings.Default()))

	s, err := Get(db, settings.KeyLowStockThreshold)
	require.NoError(t, err)
	assert.Equal(t, "10", s.Value)

	require.NoError(t, store.Clear())
	assert.Equal(t, settings.Default(), store.Load(settings.Default()))
}

func TestBackend_CorruptValueFallsBack(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		{Name: settings.KeyLowStockThreshold, Value: "abc"},
		{Name: settings.KeyCurrency, Value: "EUR"},
	})

	m := settings.NewStore(NewBackend(db)).Load(settings.Default())
	assert.Equal(t, 5, m.LowStockThreshold)
	assert.Equal(t, "EUR", m.Currency)
}

func TestBackend_BatchRollsBack(t *testing.T) {
	db := setupTestDB(t)
	backend := NewBackend(db)

	errStop := errors.New("stop")

	err := backend.Batch(func(b settings.Backend) error {
		require.NoError(t, b.Set("currency", "EUR"))
		return errStop
	})
	require.ErrorIs(t, err, errStop)

	ok, err := backend.Contains("currency")
	require.NoError(t, err)
	assert.False(t, ok, "write inside a failed batch must be rolled back")

	err = backend.Batch(func(b settings.Backend) error {
		return b.Set("currency", "EUR")
	})
	require.NoError(t, err)

	v, err := backend.Get("currency")
	require.NoError(t, err)
	assert.Equal(t, "EUR", v)
}

func TestBackend_NilDatabase(t *testing.T) {
	backend := NewBackend(nil)

	_, err := backend.Contains("currency")
	require.ErrorIs(t, err, ErrDBNil)

	require.ErrorIs(t, backend.Sync(), ErrDBNil)
	require.ErrorIs(t, backend.Clear(), ErrDBNil)
	require.ErrorIs(t, backend.Batch(func(settings.Backend) error { return nil }), ErrDBNil)
	require.ErrorIs(t, settings.NewStore(backend).Save(settings.Default()), ErrDBNil)
}
