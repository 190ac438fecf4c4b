package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/config"
	"fintrack/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *config.Config {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Server.Mode = "test"
	return cfg
}

func newSeededStore() store.Store {
	st := store.NewMemoryStore()
	st.Load(store.DefaultSeedData())
	return st
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_Routes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := SetupRouter(ctx, newTestConfig(t), newSeededStore())

	paths := []string{
		"/health",
		"/api/categories",
		"/api/transactions",
		"/api/budgets",
		"/api/dashboard/summary?month=2025-08",
		"/api/dashboard/categories",
		"/api/dashboard/trends",
		"/api/export/csv",
		"/api/export/excel",
		"/api/export/json",
	}
	for _, p := range paths {
		w := serve(r, http.MethodGet, p, "")
		assert.Equal(t, http.StatusOK, w.Code, p)
	}

	w := serve(r, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_Swagger(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := SetupRouter(ctx, newTestConfig(t), newSeededStore())

	w := serve(r, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/dashboard/summary")
}

func TestSetupRouter_WriteRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := newTestConfig(t)
	cfg.RateLimit.MaxRequests = 2
	r := SetupRouter(ctx, cfg, newSeededStore())

	body := `{"name":"Travel","icon":"fas fa-plane","color":"#0EA5E9"}`
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/categories", body).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/categories", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/api/categories", body).Code)

	// 读接口不受影响
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/categories", "").Code)
}

func TestSetupRouter_RateLimitDisabled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := newTestConfig(t)
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.MaxRequests = 1
	r := SetupRouter(ctx, cfg, newSeededStore())

	body := `{"name":"Travel","icon":"fas fa-plane","color":"#0EA5E9"}`
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/categories", body).Code)
	}
}
