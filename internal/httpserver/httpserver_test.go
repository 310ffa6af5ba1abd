package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quick-task-management/internal/httpserver"
	"quick-task-management/internal/middleware"
	"quick-task-management/internal/reminder/logonly"
	"quick-task-management/internal/task/repository/memory"
	"quick-task-management/internal/task/usecase"
	"quick-task-management/pkg/datemath"
	"quick-task-management/pkg/log"
	"quick-task-management/pkg/quickadd"
)

func newServer(t *testing.T, readiness func(context.Context) error) *httpserver.HTTPServer {
	t.Helper()
	l := log.NewNop()
	clock := datemath.FixedClock(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC))
	uc := usecase.New(l, memory.New(clock), logonly.New(l), quickadd.New(clock, nil), "UTC")

	srv, err := httpserver.New(l, httpserver.Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: "production",
		TaskUseCase: uc,
		Middleware:  middleware.New(l, middleware.Config{}),
		Readiness:   readiness,
	})
	require.NoError(t, err)
	return srv
}

func get(srv *httpserver.HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)

		var body struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, httpserver.ServiceName, body.Data["service"])
	}
}

func TestReadyFailure(t *testing.T) {
	srv := newServer(t, func(context.Context) error { return errors.New("memos down") })

	assert.Equal(t, http.StatusServiceUnavailable, get(srv, "/ready").Code)
	assert.Equal(t, http.StatusOK, get(srv, "/live").Code)
}

func TestTaskRoutesMounted(t *testing.T) {
	srv := newServer(t, nil)

	w := get(srv, "/api/v1/tasks/chips")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "next_week"))

	// No telegram handler configured.
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewValidation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: "test", Port: 8080})
	assert.Error(t, err)

	_, err = httpserver.New(nil, httpserver.Config{Mode: "test", Port: 8080})
	assert.Error(t, err)
}
