// Package models contains database model definitions.
package models

import "time"

// Setting is one persisted settings entry, keyed by name.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
