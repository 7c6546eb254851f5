package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/settings"
)

func newTestService(t *testing.T, seed map[string]string) *Service {
	t.Helper()

	cfg := &config.Config{Title: "Storefront Admin"}

	return New(cfg, settings.NewStore(settings.NewMemoryBackend(seed)))
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}

func TestNew_NilArguments(t *testing.T) {
	store := settings.NewStore(settings.NewMemoryBackend(nil))

	assert.Panics(t, func() { New(nil, store) })
	assert.Panics(t, func() { New(&config.Config{}, nil) })
}

func TestService_CheckAlive(t *testing.T) {
	s := newTestService(t, nil)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, CheckAlivePath, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body(t, resp))
	assert.True(t, s.Alive())

	s.alive.Store(false)

	resp, err = s.App.Test(httptest.NewRequest(http.MethodGet, CheckAlivePath, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestService_RootOpensStartupPage(t *testing.T) {
	tests := []struct {
		name     string
		seed     map[string]string
		location string
	}{
		{name: "default", location: "/dashboard"},
		{name: "inventory", seed: map[string]string{settings.KeyStartupPage: "Inventory"}, location: "/inventory"},
		{name: "unknown page", seed: map[string]string{settings.KeyStartupPage: "Kitchen"}, location: "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, tt.seed)

			resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, tt.location, resp.Header.Get("Location"))
		})
	}
}

func TestService_Metrics(t *testing.T) {
	s := newTestService(t, nil)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, MetricsPath, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "go_goroutines")
}

func TestService_EmbeddedTemplates(t *testing.T) {
	s := newTestService(t, map[string]string{settings.KeyStoreName: "Corner Shop"})

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	page := body(t, resp)
	assert.Contains(t, page, "Corner Shop")
	assert.Contains(t, page, "/static/css/app.css")

	resp, err = s.App.Test(httptest.NewRequest(http.MethodGet, "/settings?tab=finance", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	page = body(t, resp)
	assert.Contains(t, page, `name="general.store_name"`)
	assert.Contains(t, page, `name="finance.currency"`)
	assert.Contains(t, page, `name="token"`)

	resp, err = s.App.Test(httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
