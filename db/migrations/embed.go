// Package migrations embeds the SQL files that build the hikes and observations tables.
package migrations

import "embed"

// Files holds the up/down pairs in golang-migrate naming order.
//
//go:embed *.sql
var Files embed.FS
