package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"chorejar/internal/model"
)

func TestKidCRUD(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db)
	ks := NewKidStore(db)

	// Create
	kid, err := ks.Create(u.ID, "Nora", time.Date(2015, 3, 2, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("7.50"), model.FrequencyWeekly, "#FF5733", 25)
	if err != nil {
		t.Fatalf("create kid: %v", err)
	}
	if kid.Name != "Nora" {
		t.Errorf("name = %q, want %q", kid.Name, "Nora")
	}
	if !kid.PocketMoneyAmount.Equal(decimal.RequireFromString("7.50")) {
		t.Errorf("pocket money = %s, want 7.50", kid.PocketMoneyAmount)
	}
	if kid.SavingsSplit != 25 {
		t.Errorf("savings split = %d, want 25", kid.SavingsSplit)
	}
	if !kid.NetWealth.IsZero() {
		t.Errorf("net wealth = %s, want 0", kid.NetWealth)
	}

	// Update
	updated, err := ks.Update(kid.ID, "Nora B", kid.Birthday,
		decimal.RequireFromString("10"), model.FrequencyMonthly, "#000000", 50)
	if err != nil {
		t.Fatalf("update kid: %v", err)
	}
	if updated.Name != "Nora B" {
		t.Errorf("updated name = %q, want %q", updated.Name, "Nora B")
	}
	if updated.PocketMoneyFrequency != model.FrequencyMonthly {
		t.Errorf("frequency = %q, want monthly", updated.PocketMoneyFrequency)
	}

	// Delete
	if err := ks.Delete(kid.ID); err != nil {
		t.Fatalf("delete kid: %v", err)
	}
	got, err := ks.GetByID(kid.ID)
	if err != nil {
		t.Fatalf("get kid: %v", err)
	}
	if got != nil {
		t.Error("deleted kid should not be returned")
	}
}

func TestKidListByUserSorted(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db)

	createTestKid(t, db, u.ID, "Zoe")
	createTestKid(t, db, u.ID, "Amir")

	kids, err := NewKidStore(db).ListByUser(u.ID)
	if err != nil {
		t.Fatalf("list kids: %v", err)
	}
	if len(kids) != 2 {
		t.Fatalf("len = %d, want 2", len(kids))
	}
	if kids[0].Name != "Amir" || kids[1].Name != "Zoe" {
		t.Errorf("kids not sorted by name: %q, %q", kids[0].Name, kids[1].Name)
	}
}

func TestKidDeleteCascadesTasks(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db)
	kid := createTestKid(t, db, u.ID, "Milo")
	chore := createTestChore(t, db, u.ID, "Dishes", "2.00", model.FrequencyDaily, model.ChoreIndividual)

	cs := NewChoreStore(db)
	if _, err := cs.Assign(chore.ID, kid.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	ts := NewTaskStore(db)
	if _, err := ts.Start(chore, kid.ID, time.Now()); err != nil {
		t.Fatalf("start task: %v", err)
	}

	if err := NewKidStore(db).Delete(kid.ID); err != nil {
		t.Fatalf("delete kid: %v", err)
	}

	tasks, err := ts.ListByKid(kid.ID)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("tasks should cascade-delete with kid, got %d", len(tasks))
	}
}
