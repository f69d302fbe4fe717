// Package migrations embeds the goose SQL migrations for the portal's
// local sqlite database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
