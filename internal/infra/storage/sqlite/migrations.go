// Package sqlite provides SQLite schema migrations.
package sqlite

import (
	"embed"
)

// Migrations create tweets table.
//
//go:embed *.sql
var Migrations embed.FS
