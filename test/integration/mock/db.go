// Package mock provides in-memory backing services for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	infradb "github.com/finance-tracker/forecast/internal/infra/db"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite database carrying the service schema.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The connection is reused across scenarios; call Reset between them.
func NewDb(models []any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	// A single connection keeps the shared in-memory database alive.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, infradb.GormConfig())
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// Reset deletes every row from every migrated table.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}
