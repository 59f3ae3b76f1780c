// Package migrations embeds the web preference schema migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
