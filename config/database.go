package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase connects to the hosted Postgres. Prepared statements are
// disabled because the pooled connection endpoint does not support them.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
	})
}
