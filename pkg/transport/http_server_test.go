package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_Routes(t *testing.T) {
	table := &fakeTable{}
	provider := &countingProvider{}
	handler := NewHTTPHandler(newTestEngine(t, table, provider))

	t.Run("get all data", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/get-all-data", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Data retrieved successfully","count":1,"data":[{"id":"app-1","status":"new"}]}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(HeaderCorrelationID))
		assert.NotEmpty(t, rec.Header().Get(HeaderLatency))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("update keeps correlation id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/update-application", strings.NewReader(`{"id":"app-1","status":"done"}`))
		req.Header.Set(HeaderCorrelationID, "corr-xyz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "corr-xyz", rec.Header().Get(HeaderCorrelationID))
		assert.Equal(t, map[string]any{"status": "done"}, table.updated)
	})

	t.Run("missing id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/update-application", strings.NewReader(`{"status":"done"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Application ID is required"}`, rec.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/qualquer", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/other", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
	})

	assert.Equal(t, 5, provider.requests)
}

func TestStartHTTPServer_StopsOnContextCancel(t *testing.T) {
	provider := &countingProvider{}
	svc := newTestEngine(t, &fakeTable{}, provider)
	svc.Config.Service.Port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- StartHTTPServer(ctx, svc) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não encerrou")
	}
	assert.Equal(t, 1, provider.flushes, "shutdown faz flush das métricas")
}
