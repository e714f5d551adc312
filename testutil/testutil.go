// Package testutil opens throwaway sqlite databases and seeds rows for
// package tests.
package testutil

import (
	"fmt"
	"testing"

	"barmaja/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DB returns a migrated in-memory sqlite database private to tb.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Open("sqlite", dsn)
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("test db handle: %v", err)
	}
	// one connection keeps the shared-cache database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.RunMigrations(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}
