package settings

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loadFallbacks = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "settings_load_fallbacks_total",
		Help: "Number of stored settings values that were malformed and replaced by their default.",
	},
	[]string{"key"},
)
