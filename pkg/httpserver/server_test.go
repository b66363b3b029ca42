package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promokit/promokit/pkg/httpserver"
)

func TestServer_RunAndShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(time.Second),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	}()

	// Give the listener a moment, then cancel; Run must return cleanly.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestServer_StartFailure(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr("256.256.256.256:99999"))
	err := srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpserver.ErrStart))
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		h := httpserver.HealthCheckHandler(context.Background(), noopLogger())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body, _ := io.ReadAll(rec.Body)
		assert.Equal(t, "ALIVE", string(body))
	})

	t.Run("readiness ok", func(t *testing.T) {
		t.Parallel()
		h := httpserver.HealthCheckHandler(context.Background(), noopLogger(),
			func(context.Context) error { return nil })
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("readiness failure", func(t *testing.T) {
		t.Parallel()
		h := httpserver.HealthCheckHandler(context.Background(), noopLogger(),
			func(context.Context) error { return errors.New("dependency down") })
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}

func noopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
