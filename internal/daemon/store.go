package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/db"
	"github.com/storefront-admin/storefront-admin/internal/db/controller/setting"
	"github.com/storefront-admin/storefront-admin/internal/db/dsn"
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/filestore"
	"github.com/storefront-admin/storefront-admin/internal/settings/kvstore"
)

// OpenStore opens the settings backend selected by cfg.Settings.Backend.
// The returned func releases the backend's connections.
func OpenStore(cfg *config.Config) (*settings.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Settings.Backend {
	case config.BackendDatabase, "":
		gormDB, err := db.Open(cfg)
		if err != nil {
			return nil, noop, err
		}

		log.Debug().Str("engine", cfg.DB.GormEngine).Msg("settings stored in database")

		return settings.NewStore(setting.NewBackend(gormDB)), func() error { return db.Close(gormDB) }, nil
	case config.BackendFile:
		backend, err := filestore.New(cfg.Settings.File)
		if err != nil {
			return nil, noop, errors.Wrap(err, "can't open settings file")
		}

		log.Debug().Str("file", backend.Path()).Msg("settings stored in file")

		return settings.NewStore(backend), noop, nil
	case config.BackendMySQL, config.BackendPostgres:
		uri := dsn.MySQL(cfg.DB)
		if cfg.Settings.Backend == config.BackendPostgres {
			uri = dsn.Postgres(cfg.DB)
		}

		backend, err := kvstore.Open(cfg.Settings.Backend, uri, cfg.Settings.Table)
		if err != nil {
			return nil, noop, errors.Wrap(err, "can't open settings storage")
		}

		log.Debug().Str("driver", cfg.Settings.Backend).Msg("settings stored in key-value table")

		return settings.NewStore(backend), backend.Close, nil
	default:
		return nil, noop, errors.Wrapf(config.ErrUnknownSettingsBackend, "%q", cfg.Settings.Backend)
	}
}
