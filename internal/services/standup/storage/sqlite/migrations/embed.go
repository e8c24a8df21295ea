// Package migrations embeds the SQLite schema for standup storage.
package migrations

import "embed"

// FS contains embedded SQLite migrations for standup storage.
//
//go:embed *.sql
var FS embed.FS
