package testutil

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	migration "nutrition-tracker/cmd/database/migrate"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

var ErrForcedFailure = errors.New("forced update failure")

// FailUpdatesAfter lets the first n updates on db through and fails every later one.
func FailUpdatesAfter(t *testing.T, db *gorm.DB, n int) {
	t.Helper()

	var calls atomic.Int32
	err := db.Callback().Update().Before("gorm:update").Register("testutil:fail_update", func(tx *gorm.DB) {
		if int(calls.Add(1)) > n {
			_ = tx.AddError(ErrForcedFailure)
		}
	})
	require.NoError(t, err)
}
