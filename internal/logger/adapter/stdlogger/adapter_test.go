package stdlogger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-admin/storefront-admin/internal/logger/adapter/stdlogger"
)

func capture(t *testing.T, level zerolog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(level)

	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	return &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}

	return out
}

func TestLogger_Levels(t *testing.T) {
	buf := capture(t, zerolog.InfoLevel)
	l := stdlogger.New("gorm")

	l.Debugf("%s: hidden", "debug")
	l.Infof("%s: shown", "info")
	l.Warningf("%d: shown", 2)
	l.Errorf("%v: shown", "error")

	got := lines(t, buf)
	require.Len(t, got, 3)

	assert.Equal(t, "info", got[0]["level"])
	assert.Equal(t, "info: shown", got[0]["message"])
	assert.Equal(t, "gorm", got[0]["component"])
	assert.Equal(t, "warn", got[1]["level"])
	assert.Equal(t, "error", got[2]["level"])
}

func TestLogger_Printf(t *testing.T) {
	buf := capture(t, zerolog.DebugLevel)

	stdlogger.New("").Printf("plain %d", 1)
	stdlogger.New("gorm").WithPrintfLevel(zerolog.WarnLevel).Printf("slow query %s", "SELECT 1")

	got := lines(t, buf)
	require.Len(t, got, 2)

	assert.Equal(t, "info", got[0]["level"])
	assert.NotContains(t, got[0], "component")
	assert.Equal(t, "warn", got[1]["level"])
	assert.Equal(t, "slow query SELECT 1", got[1]["message"])
}
