package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/finance-tracker/forecast/internal/infra/db"
	"github.com/finance-tracker/forecast/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema
// migrated, using the same gorm settings as the production connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), db.GormConfig())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = conn.AutoMigrate(
		&model.ExpenseModel{},
		&model.SubscriptionModel{},
		&model.ForecastRuleModel{},
		&model.MonthlyForecastModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return conn
}
