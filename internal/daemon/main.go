// Package daemon wires the configuration, the settings store and the web service.
package daemon

import (
	"net"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	closeStore func() error
}

// New creates a daemon on the settings store selected by cfg.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil, nil
	}

	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, store),
		closeStore: closeStore,
	}, nil
}

// Start runs the web service until a shutdown signal arrives.
func (d *Daemon) Start() error {
	defer func() {
		if err := d.closeStore(); err != nil {
			log.Error().Err(err).Msg("can't close settings store")
		}
	}()

	go d.webService.WaitShutdown()

	addr := net.JoinHostPort(d.cfg.Webserver.Host, strconv.Itoa(d.cfg.Webserver.Port))
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(addr)
}
