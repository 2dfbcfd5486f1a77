// Package migrations embeds the goose SQL migrations so the server and the
// test helpers apply the same files without locating them on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
