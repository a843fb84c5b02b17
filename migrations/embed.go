// Package migrations хранит схему Postgres: справочник достопримечательностей
// и сохранённые локации пользователей.
package migrations

import "embed"

// FS - все *.sql, вшитые в бинарник
//
//go:embed *.sql
var FS embed.FS
