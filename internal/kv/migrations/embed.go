// Package migrations embeds the schema migrations for the local key-value
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
