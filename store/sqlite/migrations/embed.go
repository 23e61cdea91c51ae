package migrations

import "embed"

// FS contains embedded SQLite migrations for actor storage.
//
//go:embed *.sql
var FS embed.FS
