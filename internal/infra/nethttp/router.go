// Package nethttp manages application http interface.
package nethttp

import (
	"net/http"

	"github.com/bool64/brick"
	"github.com/swaggest/rest/nethttp"
	"github.com/vearutop/weather-tweet-load/internal/infra/nethttp/ui"
	"github.com/vearutop/weather-tweet-load/internal/infra/service"
	"github.com/vearutop/weather-tweet-load/internal/usecase"
)

// NewRouter creates an instance of router filled with handlers and docs.
func NewRouter(deps *service.Locator) http.Handler {
	r := brick.NewBaseRouter(deps.BaseLocator)

	r.Method(http.MethodPost, "/api/tweets", nethttp.NewHandler(usecase.IngestTweet(deps)))
	r.Method(http.MethodDelete, "/api/tweets", nethttp.NewHandler(usecase.Clear(deps)))
	r.Method(http.MethodGet, "/api/tweets/summary", nethttp.NewHandler(usecase.Summary(deps)))
	r.Method(http.MethodGet, "/health", nethttp.NewHandler(usecase.Health()))

	r.Method(http.MethodGet, "/", ui.Index())
	r.Mount("/static/", http.StripPrefix("/static", ui.Static))

	return r
}
