package nethttp_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/weather-tweet-load/internal/infra"
	"github.com/vearutop/weather-tweet-load/internal/infra/nethttp"
	"github.com/vearutop/weather-tweet-load/internal/infra/service"
)

func newRouter(t testing.TB) http.Handler {
	t.Helper()

	return newRouterWithCache(t, "none")
}

func newRouterWithCache(t testing.TB, cache string) http.Handler {
	t.Helper()

	cfg := service.Config{}
	cfg.Log.Output = io.Discard
	cfg.ShutdownTimeout = time.Second
	cfg.Storage = "memory"
	cfg.Cache = cache

	l, err := infra.NewServiceLocator(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		l.Shutdown()
		require.NoError(t, <-l.Wait())
	})

	return nethttp.NewRouter(l)
}

func do(r http.Handler, method, uri, body string) *httptest.ResponseRecorder {
	var b io.Reader
	if body != "" {
		b = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, uri, b)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	return rw
}

func TestNewRouter(t *testing.T) {
	r := newRouter(t)

	rw := do(r, http.MethodPost, "/api/tweets",
		`{"municipality":"mixco","temperature":27,"humidity":58,"weather":"rainy"}`)
	assert.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	assert.JSONEq(t, `{"status":"success","message":"Processed (Request #1)"}`, rw.Body.String())

	rw = do(r, http.MethodPost, "/api/tweets",
		`{"municipality":"mixco","temperature":31,"humidity":62,"weather":"sunny"}`)
	assert.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	assert.JSONEq(t, `{"status":"success","message":"Processed (Request #2)"}`, rw.Body.String())

	rw = do(r, http.MethodPost, "/api/tweets",
		`{"municipality":"mixco","temperature":99,"humidity":58,"weather":"rainy"}`)
	assert.Equal(t, http.StatusBadRequest, rw.Code, rw.Body.String())

	rw = do(r, http.MethodGet, "/api/tweets/summary?municipality=mixco", "")
	assert.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	assert.JSONEq(t, `{
		"municipality":"mixco","count":2,"avgTemperature":29,"avgHumidity":60,
		"weather":{"rainy":1,"sunny":1}
	}`, rw.Body.String())

	rw = do(r, http.MethodDelete, "/api/tweets", "")
	assert.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	assert.JSONEq(t, `{"affected":2}`, rw.Body.String())

	rw = do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	assert.JSONEq(t, `{"status":"healthy"}`, rw.Body.String())
}

func TestNewRouter_cachedSummary(t *testing.T) {
	for _, c := range []string{"naive", "advanced"} {
		t.Run(c, func(t *testing.T) {
			r := newRouterWithCache(t, c)

			rw := do(r, http.MethodPost, "/api/tweets",
				`{"municipality":"chinautla","temperature":20,"humidity":40,"weather":"cloudy"}`)
			assert.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

			rw = do(r, http.MethodGet, "/api/tweets/summary?municipality=chinautla", "")
			assert.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
			assert.JSONEq(t, `{
				"municipality":"chinautla","count":1,"avgTemperature":20,"avgHumidity":40,
				"weather":{"cloudy":1}
			}`, rw.Body.String())

			rw = do(r, http.MethodPost, "/api/tweets",
				`{"municipality":"chinautla","temperature":30,"humidity":60,"weather":"sunny"}`)
			assert.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

			// Summary is served from cache until it expires.
			rw = do(r, http.MethodGet, "/api/tweets/summary?municipality=chinautla", "")
			assert.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
			assert.Contains(t, rw.Body.String(), `"count":1`)
		})
	}
}
