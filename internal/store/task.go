package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"chorejar/internal/model"
	"chorejar/internal/money"
)

var (
	// ErrTaskInProgress means the kid already has an in-progress task.
	ErrTaskInProgress = errors.New("kid already has a task in progress")
	// ErrNotPending means an approval transition was attempted on a task
	// that is not awaiting approval.
	ErrNotPending = errors.New("task is not pending approval")
)

type TaskStore struct {
	db *sql.DB
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

func scanTask(scanner interface{ Scan(...any) error }) (*model.Task, error) {
	var t model.Task
	var status, amount string
	var startedAt, completedAt sql.NullTime
	var timeToComplete sql.NullInt64
	var photoURL sql.NullString

	err := scanner.Scan(
		&t.ID, &t.ChoreID, &t.KidID, &status, &startedAt, &completedAt,
		&timeToComplete, &photoURL, &amount, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = model.TaskStatus(status)
	if startedAt.Valid {
		t.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		t.CompletedAt = &completedAt.Time
	}
	if timeToComplete.Valid {
		t.TimeToComplete = &timeToComplete.Int64
	}
	if photoURL.Valid {
		t.PhotoURL = &photoURL.String
	}
	if t.EarningsAmount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse earnings amount: %w", err)
	}
	return &t, nil
}

const taskCols = `id, chore_id, kid_id, status, started_at, completed_at, time_to_complete, photo_url, earnings_amount, created_at`

// Start creates an in-progress task, copying the chore's payment amount so
// later chore edits never change what the attempt is worth. The check runs
// inside a transaction; a partial unique index on (kid_id) WHERE
// status = 'in_progress' backs it up against races.
func (s *TaskStore) Start(chore *model.Chore, kidID int64, now time.Time) (*model.Task, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var inProgress int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM tasks WHERE kid_id = ? AND status = ?`,
		kidID, string(model.TaskInProgress),
	).Scan(&inProgress)
	if err != nil {
		return nil, fmt.Errorf("check in-progress task: %w", err)
	}
	if inProgress > 0 {
		return nil, ErrTaskInProgress
	}

	result, err := tx.Exec(
		`INSERT INTO tasks (chore_id, kid_id, status, started_at, earnings_amount) VALUES (?, ?, ?, ?, ?)`,
		chore.ID, kidID, string(model.TaskInProgress), now.UTC(), chore.PaymentAmount.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(id)
}

func (s *TaskStore) GetByID(id int64) (*model.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskCols+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// Complete marks an in-progress task finished, recording the elapsed whole
// seconds since it started (zero when started_at is missing) and the
// optional photo URL. The task moves to pending_approval.
func (s *TaskStore) Complete(taskID int64, photoURL *string, now time.Time) (*model.Task, error) {
	task, err := s.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	completedAt := now.UTC()
	var elapsed int64
	if task.StartedAt != nil {
		elapsed = int64(completedAt.Sub(task.StartedAt.UTC()) / time.Second)
		if elapsed < 0 {
			elapsed = 0
		}
	}

	var photo sql.NullString
	if photoURL != nil {
		photo = sql.NullString{String: *photoURL, Valid: true}
	}

	_, err = s.db.Exec(
		`UPDATE tasks SET status = ?, completed_at = ?, time_to_complete = ?, photo_url = ? WHERE id = ?`,
		string(model.TaskPendingApproval), completedAt, elapsed, photo, taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	return s.GetByID(taskID)
}

// Approve moves a pending task to approved, making it count toward earnings.
func (s *TaskStore) Approve(taskID int64) (*model.Task, error) {
	return s.transition(taskID, model.TaskApproved)
}

// Reject moves a pending task to rejected. The row is kept as an audit
// trail; rejected tasks count toward neither earnings nor availability.
func (s *TaskStore) Reject(taskID int64) (*model.Task, error) {
	return s.transition(taskID, model.TaskRejected)
}

func (s *TaskStore) transition(taskID int64, to model.TaskStatus) (*model.Task, error) {
	result, err := s.db.Exec(
		`UPDATE tasks SET status = ? WHERE id = ? AND status = ?`,
		string(to), taskID, string(model.TaskPendingApproval),
	)
	if err != nil {
		return nil, fmt.Errorf("transition task: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrNotPending
	}
	return s.GetByID(taskID)
}

func (s *TaskStore) ListByKid(kidID int64) ([]model.Task, error) {
	rows, err := s.db.Query(
		`SELECT `+taskCols+` FROM tasks WHERE kid_id = ? ORDER BY created_at DESC, id DESC`,
		kidID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListCompletedByKid returns the kid's non-rejected completed tasks,
// newest first.
func (s *TaskStore) ListCompletedByKid(kidID int64) ([]model.Task, error) {
	rows, err := s.db.Query(
		`SELECT `+taskCols+` FROM tasks
		 WHERE kid_id = ? AND completed_at IS NOT NULL AND status != ?
		 ORDER BY completed_at DESC, id DESC`,
		kidID, string(model.TaskRejected),
	)
	if err != nil {
		return nil, fmt.Errorf("list completed tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func collectTasks(rows *sql.Rows) ([]model.Task, error) {
	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// HasCompletedSince reports whether the kid has a non-rejected completion
// of the chore at or after the given instant.
func (s *TaskStore) HasCompletedSince(choreID, kidID int64, since time.Time) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM tasks
		 WHERE chore_id = ? AND kid_id = ? AND completed_at IS NOT NULL AND completed_at >= ? AND status != ?`,
		choreID, kidID, since.UTC(), string(model.TaskRejected),
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check completion: %w", err)
	}
	return n > 0, nil
}

// AnyCompletedSince reports whether any kid has a non-rejected completion
// of the chore at or after the given instant.
func (s *TaskStore) AnyCompletedSince(choreID int64, since time.Time) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM tasks
		 WHERE chore_id = ? AND completed_at IS NOT NULL AND completed_at >= ? AND status != ?`,
		choreID, since.UTC(), string(model.TaskRejected),
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check cross-kid completion: %w", err)
	}
	return n > 0, nil
}

// TotalEarnings sums the earnings amounts of the kid's approved tasks.
// Returns decimal zero when there are none. Summed in Go so money stays
// exact decimal rather than SQLite float arithmetic.
func (s *TaskStore) TotalEarnings(kidID int64) (decimal.Decimal, error) {
	rows, err := s.db.Query(
		`SELECT earnings_amount FROM tasks WHERE kid_id = ? AND status = ?`,
		kidID, string(model.TaskApproved),
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum earnings: %w", err)
	}
	defer rows.Close()

	var amounts []decimal.Decimal
	for rows.Next() {
		var amount string
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("scan earnings amount: %w", err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parse earnings amount: %w", err)
		}
		amounts = append(amounts, d)
	}
	return money.Sum(amounts), rows.Err()
}
