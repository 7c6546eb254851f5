// Package setting stores settings entries in the database through gorm.
package setting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/db/models"
	"github.com/storefront-admin/storefront-admin/internal/settings"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when a setting name is empty.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting
	result := db.Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all settings ordered by name.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var all []models.Setting
	if result := db.Order("name").Find(&all); result.Error != nil {
		return nil, result.Error
	}

	return all, nil
}

// Exists reports whether a setting with the given name is stored.
func Exists(db *gorm.DB, name string) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}
	if name == "" {
		return false, ErrSettingNameEmpty
	}

	var count int64
	if result := db.Model(&models.Setting{}).Where(nameQueryPattern, name).Count(&count); result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Set creates or updates a setting by name.
func Set(db *gorm.DB, name, value string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting
	result := db.Where(nameQueryPattern, name).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = models.Setting{Name: name, Value: value}
		if result = db.Create(&setting); result.Error != nil {
			return nil, result.Error
		}

		return &setting, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	setting.Value = value
	if result = db.Save(&setting); result.Error != nil {
		return nil, result.Error
	}

	return &setting, nil
}

// DeleteAll removes every stored setting.
func DeleteAll(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Setting{}).Error
}

// Backend exposes the settings table as a settings.Backend.
type Backend struct {
	db *gorm.DB
}

var (
	_ settings.Backend = (*Backend)(nil)
	_ settings.Batcher = (*Backend)(nil)
	_ settings.Lister  = (*Backend)(nil)
)

// NewBackend creates a settings backend on db.
func NewBackend(db *gorm.DB) *Backend {
	return &Backend{db: db}
}

// Contains implements settings.Backend.
func (b *Backend) Contains(key string) (bool, error) {
	return Exists(b.db, key)
}

// Get implements settings.Backend.
func (b *Backend) Get(key string) (string, error) {
	s, err := Get(b.db, key)
	if err != nil {
		return "", err
	}

	return s.Value, nil
}

// Set implements settings.Backend.
func (b *Backend) Set(key, value string) error {
	_, err := Set(b.db, key, value)

	return err
}

// Sync implements settings.Backend. Every statement is committed when it returns,
// so there is nothing left to flush outside of a Batch.
func (b *Backend) Sync() error {
	if b.db == nil {
		return ErrDBNil
	}

	return nil
}

// StoredKeys implements settings.Lister with a single query.
func (b *Backend) StoredKeys() ([]string, error) {
	all, err := GetAll(b.db)
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(all))
	for i, s := range all {
		keys[i] = s.Name
	}

	return keys, nil
}

// Clear implements settings.Backend.
func (b *Backend) Clear() error {
	return DeleteAll(b.db)
}

// Batch runs fn inside one transaction. The transaction is rolled back when fn
// fails or panics and committed otherwise.
func (b *Backend) Batch(fn func(settings.Backend) error) error {
	if b.db == nil {
		return ErrDBNil
	}

	return b.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Backend{db: tx})
	})
}
