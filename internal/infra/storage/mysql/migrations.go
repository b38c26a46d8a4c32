// Package mysql provides MySQL schema migrations.
package mysql

import (
	"embed"
)

// Migrations create tweets table.
//
//go:embed *.sql
var Migrations embed.FS
