// Package static provides embedded static assets.
package static

import (
	"embed"
)

// Assets provides index page of ingestion service.
//
//go:embed *.html
var Assets embed.FS
