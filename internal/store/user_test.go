package store

import (
	"testing"
)

func TestUserCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	us := NewUserStore(db)

	u, err := us.Create("alice", "hash", "Europe/Berlin")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.Username != "alice" {
		t.Errorf("username = %q, want %q", u.Username, "alice")
	}
	if u.Timezone != "Europe/Berlin" {
		t.Errorf("timezone = %q, want %q", u.Timezone, "Europe/Berlin")
	}

	got, err := us.GetByUsername("alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Fatalf("get by username returned %+v", got)
	}
	if got.PasswordHash != "hash" {
		t.Errorf("password hash = %q, want %q", got.PasswordHash, "hash")
	}
}

func TestUserGetMissing(t *testing.T) {
	db := setupTestDB(t)
	us := NewUserStore(db)

	got, err := us.GetByUsername("nobody")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing user, got %+v", got)
	}

	got, err = us.GetByID(999)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing user, got %+v", got)
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	us := NewUserStore(db)

	if _, err := us.Create("bob", "h1", ""); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := us.Create("bob", "h2", ""); err == nil {
		t.Error("expected error for duplicate username")
	}
}

func TestUserUpdateTimezone(t *testing.T) {
	db := setupTestDB(t)
	us := NewUserStore(db)

	u, err := us.Create("carol", "hash", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	updated, err := us.UpdateTimezone(u.ID, "Australia/Sydney")
	if err != nil {
		t.Fatalf("update timezone: %v", err)
	}
	if updated.Timezone != "Australia/Sydney" {
		t.Errorf("timezone = %q, want %q", updated.Timezone, "Australia/Sydney")
	}
}

func TestUserDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	us := NewUserStore(db)

	u := createTestUser(t, db)
	kid := createTestKid(t, db, u.ID, "Milo")

	if err := us.Delete(u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	got, err := NewKidStore(db).GetByID(kid.ID)
	if err != nil {
		t.Fatalf("get kid: %v", err)
	}
	if got != nil {
		t.Error("kid should cascade-delete with user")
	}
}
