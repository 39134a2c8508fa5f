// Package migrations contains the embedded SQL schema history for the
// SQLite backend of the offline store.
package migrations

import "embed"

// Files exposes the compiled-in migration SQL files.
//
//go:embed *.sql
var Files embed.FS
