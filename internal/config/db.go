package config

// Gorm engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	GormEngine string `mapstructure:"gormEngine"` // sqlite, mysql or postgres
	Extras     string `mapstructure:"extras"`     // driver options appended to the DSN
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"` // database name, or the file path for sqlite
}
