package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"chorejar/internal/database"
	"chorejar/internal/model"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB) *model.User {
	t.Helper()
	u, err := NewUserStore(db).Create("parent", "hashed-password", "America/New_York")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return u
}

func createTestKid(t *testing.T, db *sql.DB, userID int64, name string) *model.Kid {
	t.Helper()
	k, err := NewKidStore(db).Create(
		userID, name,
		time.Date(2016, 5, 10, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(5), model.FrequencyWeekly, "#4F46E5", 20,
	)
	if err != nil {
		t.Fatalf("create test kid: %v", err)
	}
	return k
}

func createTestChore(t *testing.T, db *sql.DB, userID int64, title string, payment string, freq model.Frequency, ctype model.ChoreType) *model.Chore {
	t.Helper()
	amount, err := decimal.NewFromString(payment)
	if err != nil {
		t.Fatalf("parse payment: %v", err)
	}
	c, err := NewChoreStore(db).Create(userID, title, "", amount, freq, ctype, false)
	if err != nil {
		t.Fatalf("create test chore: %v", err)
	}
	return c
}
