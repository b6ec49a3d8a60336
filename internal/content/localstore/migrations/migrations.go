// Package migrations embeds the local store schema.
package migrations

import "embed"

// FS holds the SQL migrations for the local store.
//
//go:embed *.sql
var FS embed.FS
