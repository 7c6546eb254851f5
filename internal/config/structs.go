package config

import (
	"github.com/storefront-admin/storefront-admin/internal/logger"
)

// Settings backend names.
const (
	BackendDatabase = "database"
	BackendFile     = "file"
	BackendMySQL    = "mysql"
	BackendPostgres = "postgres"
)

// Config overall data structure.
type Config struct {
	DevMode   bool       `mapstructure:"devMode"` // enable dev mode for development
	Title     string     `mapstructure:"title"`
	DB        DB         `mapstructure:"db"`
	Log       logger.Log `mapstructure:"log"`
	Webserver Webserver  `mapstructure:"webserver"`
	Settings  Settings   `mapstructure:"settings"`
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   `mapstructure:"browseStatic"`   // enable static file browsing (for development purposes only)
	DisableRecover bool   `mapstructure:"disableRecover"` // disable recover middleware
	Host           string `mapstructure:"host"`           // listening address, empty for all interfaces
	Port           int    `mapstructure:"port"`           // listening port for the webserver
	ShutDownTime   int    `mapstructure:"shutDownTime"`   // seconds /checkalive fails before shutdown
	URL            string `mapstructure:"url"`            // base url for the webserver
}

// Settings selects where the storefront settings are persisted.
type Settings struct {
	// Backend is one of database, file, mysql or postgres.
	// database uses the gorm connection of DB, mysql and postgres use a
	// key-value table on the server described by DB.
	Backend string `mapstructure:"backend"`
	// File is the settings file of the file backend (.toml, .yaml, .yml or .json).
	File string `mapstructure:"file"`
	// Table is the key-value table of the mysql and postgres backends.
	Table string `mapstructure:"table"`
}
