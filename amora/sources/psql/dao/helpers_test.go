package dao

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"amora/amora/sources/psql"
	"amora/amora/sources/psql/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// setupTestDB opens a fresh in-memory database with the full schema.
// A named shared-cache DSN keeps all pooled connections on the same
// database, and a single open connection serializes concurrent writers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:dao_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := psql.Migrate(context.Background(), gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}
	})
	return gdb
}

func createTestUser(t *testing.T, db *gorm.DB, handle string) *models.User {
	t.Helper()
	user := models.User{Handle: handle}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func createTestPersona(t *testing.T, db *gorm.DB, name string) *models.Persona {
	t.Helper()
	persona := models.Persona{
		Name:  name,
		Age:   24,
		Bio:   "chai lover",
		Vibes: []byte(`["Music","Travel"]`),
	}
	if err := db.Create(&persona).Error; err != nil {
		t.Fatalf("failed to create persona: %v", err)
	}
	return &persona
}
