package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"chorejar/internal/model"
)

func TestTaskStartFreezesEarnings(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db)
	kid := createTestKid(t, db, u.ID, "Milo")
	chore := createTestChore(t, db, u.ID, "Dishes", "2.50", model.FrequencyDaily, model.ChoreIndividual)
	cs := NewChoreStore(db)
	ts := NewTaskStore(db)

	if _, err := cs.Assign(chore.ID, kid.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	now := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	task, err := ts.Start(chore, kid.ID, now)
	if err != nil {
		t.Fatalf("start task: %v", err)
	}
	if task.Status != model.TaskInProgress {
		t.Errorf("status = %q, want in_progress", task.Status)
	}
	if !task.EarningsAmount.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("earnings = %s, want 2.50", task.EarningsAmount)
	}

	// Raising the chore's payment must not change the running task.
	if _, err := cs.Update(chore.ID, chore.Title, chore.Description,
		decimal.RequireFromString("9.99"), chore.Frequency, chore.ChoreType); err != nil {
		t.Fatalf("update chore: %v", err)
	}
	got, err := ts.GetByID(task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if !got.EarningsAmount.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("earnings after chore edit = %s, want 2.50", got.EarningsAmount)
	}
}

func TestTaskStartOnlyOneInProgress(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db)
	kid := createTestKid(t, db, u.ID, "Milo")
	c1 := createTestChore(t, db, u.ID, "Dishes", "2.00", model.FrequencyDaily, model.ChoreIndividual)
	c2 := createTestChore(t, db, u.ID, "Vacuum", "3.00", model.FrequencyDaily, model.ChoreIndividual)
	ts := NewTaskStore(db)

	if _, err := ts.Start(c1, kid.ID, time.Now()); err != nil {
		t.Fatalf("start first task: %v", err)
	}

	_, err := ts.Start(c2, kid.ID, time.Now())
	if !errors.Is(err, ErrTaskInProgress) {
		t.Errorf("err = %v, want ErrTaskInProgress", err)
	}
}

func TestTaskComplete(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db)
	kid := createTestKid(t, db, u.ID, "Milo")
	chore := createTestChore(t, db, u.ID, "Dishes", "2.00", model.FrequencyDaily, model.ChoreIndividual)
	ts := NewTaskStore(db)

	started := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	task, err := ts.Start(chore, kid.ID, started)
	if err != nil {
		t.Fatalf("start task: %v", err)
	}

	photoURL := "https://photos.example.com/task-1.jpg"
	done, err := ts.Complete(task.ID, &photoURL, started.Add(2*time.Minute+5*time.Second))
	if err != nil {
		t.Fatalf("complete task: %v", err)
	}
	if done.Status != model.TaskPendingApproval {
		t.Errorf("status = %q, want pending_approval", done.Status)
	}
	if done.TimeToComplete == nil || *done.TimeToComplete != 125 {
		t.Errorf("time_to_complete = %v, want 125", done.TimeToComplete)
	}
	if done.PhotoURL == nil || *done.PhotoURL != photoURL {
		t.Errorf("photo_url = %v, want %q", done.PhotoURL, photoURL)
	}

	// Kid can start the next task now.
	c2 := createTestChore(t, db, u.ID, "Vacuum", "3.00", model.FrequencyDaily, model.ChoreIndividual)
	if _, err := ts.Start(c2, kid.ID, time.Now()); err != nil {
		t.Errorf("start after complete: %v", err)
	}
}

func TestTaskCompleteMissing(t *testing.T) {
	db := setupTestDB(t)
	ts := NewTaskStore(db)

	got, err := ts.Complete(999, nil, time.Now())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing task, got %+v", got)
	}
}

func TestTaskApproveReject(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db)
	kid := createTestKid(t, db, u.ID, "Milo")
	chore := createTestChore(t, db, u.ID, "Dishes", "2.00", model.FrequencyDaily, model.ChoreIndividual)
	ts := NewTaskStore(db)

	task, err := ts.Start(chore, kid.ID, time.Now())
	if err != nil {
		t.Fatalf("start task: %v", err)
	}

	// Approving an in-progress task is invalid.
	if _, err := ts.Approve(task.ID); !errors.Is(err, ErrNotPending) {
		t.Errorf("approve in-progress: err = %v, want ErrNotPending", err)
	}

	if _, err := ts.Complete(task.ID, nil, time.Now()); err != nil {
		t.Fatalf("complete task: %v", err)
	}

	approved, err := ts.Approve(task.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != model.TaskApproved {
		t.Errorf("status = %q, want approved", approved.Status)
	}

	// Rejecting an already approved task is invalid.
	if _, err := ts.Reject(task.ID); !errors.Is(err, ErrNotPending) {
		t.Errorf("reject approved: err = %v, want ErrNotPending", err)
	}
}

func TestTaskTotalEarnings(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db)
	kid := createTestKid(t, db, u.ID, "Milo")
	ts := NewTaskStore(db)

	total, err := ts.TotalEarnings(kid.ID)
	if err != nil {
		t.Fatalf("total earnings: %v", err)
	}
	if !total.IsZero() {
		t.Errorf("total = %s, want 0", total)
	}

	// Two approved, one rejected, one pending. Only approved count.
	amounts := []string{"2.50", "4.25", "9.00", "1.00"}
	var tasks []int64
	for i, amt := range amounts {
		chore := createTestChore(t, db, u.ID, "Chore", amt, model.FrequencyDaily, model.ChoreIndividual)
		task, err := ts.Start(chore, kid.ID, time.Now())
		if err != nil {
			t.Fatalf("start task %d: %v", i, err)
		}
		if _, err := ts.Complete(task.ID, nil, time.Now()); err != nil {
			t.Fatalf("complete task %d: %v", i, err)
		}
		tasks = append(tasks, task.ID)
	}
	if _, err := ts.Approve(tasks[0]); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := ts.Approve(tasks[1]); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := ts.Reject(tasks[2]); err != nil {
		t.Fatalf("reject: %v", err)
	}

	total, err = ts.TotalEarnings(kid.ID)
	if err != nil {
		t.Fatalf("total earnings: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("6.75")) {
		t.Errorf("total = %s, want 6.75", total)
	}
}

func TestTaskCompletedSinceExcludesRejected(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db)
	kid := createTestKid(t, db, u.ID, "Milo")
	chore := createTestChore(t, db, u.ID, "Dishes", "2.00", model.FrequencyDaily, model.ChoreIndividual)
	ts := NewTaskStore(db)

	dayStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	task, err := ts.Start(chore, kid.ID, dayStart.Add(9*time.Hour))
	if err != nil {
		t.Fatalf("start task: %v", err)
	}
	if _, err := ts.Complete(task.ID, nil, dayStart.Add(10*time.Hour)); err != nil {
		t.Fatalf("complete task: %v", err)
	}

	done, err := ts.HasCompletedSince(chore.ID, kid.ID, dayStart)
	if err != nil {
		t.Fatalf("has completed since: %v", err)
	}
	if !done {
		t.Error("pending completion should count as completed")
	}

	// A rejected task no longer blocks the chore.
	if _, err := ts.Reject(task.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	done, err = ts.HasCompletedSince(chore.ID, kid.ID, dayStart)
	if err != nil {
		t.Fatalf("has completed since: %v", err)
	}
	if done {
		t.Error("rejected completion should not count")
	}
}
