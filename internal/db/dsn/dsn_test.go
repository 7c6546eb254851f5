package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storefront-admin/storefront-admin/internal/config"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		db   config.DB
		want string
	}{
		{
			name: "mysql",
			db: config.DB{
				GormEngine: config.EngineMySQL, User: "shop", Password: "secret",
				Host: "db", Port: 3306, Name: "storefront", Extras: "parseTime=True",
			},
			want: "shop:secret@tcp(db:3306)/storefront?parseTime=True",
		},
		{
			name: "mysql without extras",
			db:   config.DB{GormEngine: config.EngineMySQL, User: "shop", Host: "db", Port: 3306, Name: "storefront"},
			want: "shop:@tcp(db:3306)/storefront",
		},
		{
			name: "postgres",
			db: config.DB{
				GormEngine: config.EnginePostgres, User: "shop", Password: "p@ss",
				Host: "db", Port: 5432, Name: "storefront", Extras: "sslmode=disable",
			},
			want: "postgres://shop:p%40ss@db:5432/storefront?sslmode=disable",
		},
		{
			name: "sqlite",
			db:   config.DB{GormEngine: config.EngineSQLite, Name: "./data/storefront.db"},
			want: "./data/storefront.db",
		},
		{
			name: "sqlite with pragma",
			db:   config.DB{Name: "shop.db", Extras: "_pragma=busy_timeout(5000)"},
			want: "shop.db?_pragma=busy_timeout(5000)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Create(&config.Config{DB: tt.db}))
		})
	}
}
