// Package ui provides application web user interface.
package ui

import (
	"net/http"
	"os"

	"github.com/vearutop/statigz"
	"github.com/vearutop/statigz/brotli"
	"github.com/vearutop/weather-tweet-load/resources/static"
)

// Static serves static assets, local directory takes precedence over embedded files.
var Static http.Handler

// nolint:gochecknoinits
func init() {
	if _, err := os.Stat("./resources/static"); err == nil {
		Static = http.FileServer(http.Dir("./resources/static"))
	} else {
		Static = statigz.FileServer(static.Assets, brotli.AddEncoding, statigz.EncodeOnInit)
	}
}

// Index serves index page with endpoints overview.
func Index() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Static.ServeHTTP(w, r)
	})
}
