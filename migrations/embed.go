// migrations/embed.go
package migrations

import "embed"

// FS: SQL-миграции goose, вшитые в бинарник.
//
//go:embed *.sql
var FS embed.FS
