package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exercise-tracker/internal/bootstrap"
	"exercise-tracker/internal/config"
	"exercise-tracker/internal/testutil"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()

	views := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(views, "index.html"), []byte("<h1>Exercise tracker</h1>"), 0o600))
	public := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(public, "style.css"), []byte("body{}"), 0o600))

	return &bootstrap.App{
		Config: &config.Config{
			App: config.AppConfig{
				Name:      "exercise-tracker",
				GinMode:   gin.TestMode,
				ViewsDir:  views,
				PublicDir: public,
			},
		},
		Logger:    testutil.MakeNoopLogger(),
		StartedAt: time.Now(),
	}
}

func TestNewRouter_Routes(t *testing.T) {
	router := NewRouter(newTestApp(t))

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"GET /healthz",
		"POST /api/users",
		"GET /api/users",
		"POST /api/users/:_id/exercises",
		"GET /api/users/:_id/logs",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestNewRouter_StaticPages(t *testing.T) {
	router := NewRouter(newTestApp(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Exercise tracker")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/style.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	router := NewRouter(newTestApp(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/users", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
