// Package pkidiscovery embeds the database migrations of the discovery engine.
package pkidiscovery

import "embed"

// Migrations holds the goose migration files applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
