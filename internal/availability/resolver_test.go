package availability

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"chorejar/internal/database"
	"chorejar/internal/model"
	"chorejar/internal/store"
)

func setupResolverTest(t *testing.T) (*sql.DB, *Resolver, *store.ChoreStore, *store.TaskStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cs := store.NewChoreStore(db)
	ts := store.NewTaskStore(db)
	return db, NewResolver(cs, ts), cs, ts
}

func makeFamily(t *testing.T, db *sql.DB) (int64, int64, int64) {
	t.Helper()
	u, err := store.NewUserStore(db).Create("parent", "hash", "UTC")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	ks := store.NewKidStore(db)
	birthday := time.Date(2016, 5, 10, 0, 0, 0, 0, time.UTC)
	k1, err := ks.Create(u.ID, "Milo", birthday, decimal.NewFromInt(5), model.FrequencyWeekly, "#4F46E5", 0)
	if err != nil {
		t.Fatalf("create kid: %v", err)
	}
	k2, err := ks.Create(u.ID, "Nora", birthday, decimal.NewFromInt(5), model.FrequencyWeekly, "#4F46E5", 0)
	if err != nil {
		t.Fatalf("create kid: %v", err)
	}
	return u.ID, k1.ID, k2.ID
}

func completeChore(t *testing.T, ts *store.TaskStore, chore *model.Chore, kidID int64, at time.Time) {
	t.Helper()
	task, err := ts.Start(chore, kidID, at)
	if err != nil {
		t.Fatalf("start task: %v", err)
	}
	if _, err := ts.Complete(task.ID, nil, at.Add(5*time.Minute)); err != nil {
		t.Fatalf("complete task: %v", err)
	}
}

func TestDecide(t *testing.T) {
	daily := model.Chore{Frequency: model.FrequencyDaily, ChoreType: model.ChoreIndividual}
	dailyShared := model.Chore{Frequency: model.FrequencyDaily, ChoreType: model.ChoreFirstCome}
	weekly := model.Chore{Frequency: model.FrequencyWeekly, ChoreType: model.ChoreIndividual}

	if !Decide(daily, false, false) {
		t.Error("untouched daily chore should be available")
	}
	if Decide(daily, true, false) {
		t.Error("daily chore completed today should be blocked")
	}
	if Decide(dailyShared, false, true) {
		t.Error("first-come daily chore completed by anyone should be blocked")
	}
	if !Decide(weekly, true, false) {
		t.Error("weekly chore is never auto-blocked")
	}
}

func TestForKidDailyBlocksAfterCompletion(t *testing.T) {
	db, resolver, cs, ts := setupResolverTest(t)
	userID, kidID, _ := makeFamily(t, db)

	chore, err := cs.Create(userID, "Dishes", "", decimal.NewFromInt(2), model.FrequencyDaily, model.ChoreIndividual, false)
	if err != nil {
		t.Fatalf("create chore: %v", err)
	}
	if _, err := cs.Assign(chore.ID, kidID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	chores, err := resolver.ForKid(kidID, "UTC", morning)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(chores) != 1 {
		t.Fatalf("len = %d, want 1", len(chores))
	}
	if !chores[0].IsAvailable || chores[0].CompletedToday {
		t.Errorf("fresh chore: available = %v, completed = %v", chores[0].IsAvailable, chores[0].CompletedToday)
	}

	completeChore(t, ts, chore, kidID, morning)

	chores, err = resolver.ForKid(kidID, "UTC", morning.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if chores[0].IsAvailable || !chores[0].CompletedToday {
		t.Errorf("after completion: available = %v, completed = %v", chores[0].IsAvailable, chores[0].CompletedToday)
	}

	// The next local day it opens again.
	chores, err = resolver.ForKid(kidID, "UTC", morning.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !chores[0].IsAvailable {
		t.Error("daily chore should reopen the next day")
	}
}

func TestForKidFirstComeBlocksAcrossKids(t *testing.T) {
	db, resolver, cs, ts := setupResolverTest(t)
	userID, k1, k2 := makeFamily(t, db)

	chore, err := cs.Create(userID, "Feed the cat", "", decimal.NewFromInt(1), model.FrequencyDaily, model.ChoreFirstCome, false)
	if err != nil {
		t.Fatalf("create chore: %v", err)
	}
	if err := cs.AssignToAll(chore.ID, userID); err != nil {
		t.Fatalf("assign to all: %v", err)
	}

	morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	completeChore(t, ts, chore, k1, morning)

	// The sibling who didn't do it is locked out too.
	chores, err := resolver.ForKid(k2, "UTC", morning.Add(time.Hour))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(chores) != 1 {
		t.Fatalf("len = %d, want 1", len(chores))
	}
	if chores[0].IsAvailable {
		t.Error("first-come chore should be blocked for the other kid")
	}
	if chores[0].CompletedToday {
		t.Error("other kid did not complete it themselves")
	}
}

func TestForKidWeeklyNeverBlocked(t *testing.T) {
	db, resolver, cs, ts := setupResolverTest(t)
	userID, kidID, _ := makeFamily(t, db)

	chore, err := cs.Create(userID, "Mow the lawn", "", decimal.NewFromInt(5), model.FrequencyWeekly, model.ChoreIndividual, false)
	if err != nil {
		t.Fatalf("create chore: %v", err)
	}
	if _, err := cs.Assign(chore.ID, kidID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	completeChore(t, ts, chore, kidID, morning)

	chores, err := resolver.ForKid(kidID, "UTC", morning.Add(time.Hour))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !chores[0].IsAvailable {
		t.Error("weekly chore stays available after completion")
	}
	if !chores[0].CompletedToday {
		t.Error("completed_today should still report the completion")
	}
}

func TestDayStartRespectsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 03:00 UTC on June 2 is still June 1 in New York.
	now := time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC)
	start := DayStart(now, loc)

	want := time.Date(2025, 6, 1, 0, 0, 0, 0, loc)
	if !start.Equal(want) {
		t.Errorf("day start = %v, want %v", start, want)
	}
}

func TestLocationFallback(t *testing.T) {
	if Location("") != time.Local {
		t.Error("empty name should fall back to local")
	}
	if Location("Not/AZone") != time.Local {
		t.Error("unknown name should fall back to local")
	}
	if Location("UTC") == time.Local && time.Local != time.UTC {
		t.Error("known zone should load")
	}
}
