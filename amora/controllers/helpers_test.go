package controllers

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"amora/amora/services/llm"
	"amora/amora/sources/psql"
	"amora/amora/sources/psql/models"
	"amora/amora/utils/logging"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logging.InitLogger() // ensures the zap globals aren't nil
	dsn := fmt.Sprintf("file:ctrl_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
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
		Bio:   "chai lover ☕ | music obsessed 🎵",
		Vibes: []byte(`["Deep talks","Music","Travel"]`),
	}
	if err := db.Create(&persona).Error; err != nil {
		t.Fatalf("failed to create persona: %v", err)
	}
	return &persona
}

// setUsage presets today's counters for a user.
func setUsage(t *testing.T, db *gorm.DB, userID, swipes, messages int) {
	t.Helper()
	row := models.UsageLimit{
		UserID:        userID,
		Day:           time.Now().UTC().Format("2006-01-02"),
		SwipesToday:   swipes,
		MessagesToday: messages,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to preset usage: %v", err)
	}
}

func getUsage(t *testing.T, db *gorm.DB, userID int) models.UsageLimit {
	t.Helper()
	var row models.UsageLimit
	day := time.Now().UTC().Format("2006-01-02")
	if err := db.Where("user_id = ? AND day = ?", userID, day).First(&row).Error; err != nil {
		t.Fatalf("failed to read usage: %v", err)
	}
	return row
}

// fixedMatchPolicy always answers the same way.
type fixedMatchPolicy struct {
	match bool
}

func (p fixedMatchPolicy) IsMatch(userID int, personaID uuid.UUID) bool {
	return p.match
}

// stubGenerator records what was asked of it and returns a fixed reply.
type stubGenerator struct {
	reply      string
	err        error
	calls      int
	lastSystem string
	lastTurns  []llm.Turn
}

func (s *stubGenerator) Generate(ctx context.Context, system string, turns []llm.Turn) (string, error) {
	s.calls++
	s.lastSystem = system
	s.lastTurns = turns
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}
