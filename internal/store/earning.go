package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"chorejar/internal/model"
	"chorejar/internal/money"
)

// ErrNoEarnings means a rollup was requested for a kid with no approved
// tasks; no period row is written.
var ErrNoEarnings = errors.New("no approved earnings to reset")

type EarningStore struct {
	db *sql.DB
}

func NewEarningStore(db *sql.DB) *EarningStore {
	return &EarningStore{db: db}
}

func scanPeriod(scanner interface{ Scan(...any) error }) (*model.EarningPeriod, error) {
	var p model.EarningPeriod
	var total, savings, breakdown string

	err := scanner.Scan(
		&p.ID, &p.KidID, &p.PeriodStart, &p.PeriodEnd, &total, &savings,
		&p.TasksCompleted, &breakdown, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if p.TotalEarned, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("parse total earned: %w", err)
	}
	if p.SavingsAmount, err = decimal.NewFromString(savings); err != nil {
		return nil, fmt.Errorf("parse savings amount: %w", err)
	}
	p.Breakdown = json.RawMessage(breakdown)
	return &p, nil
}

const periodCols = `id, kid_id, period_start, period_end, total_earned, savings_amount, tasks_completed, breakdown, created_at`

// Reset folds the kid's approved tasks into one immutable earning period:
// it snapshots the total and a per-task breakdown, adds the total to the
// kid's net wealth, and deletes the summarized task rows. All of it runs in
// a single transaction; a failure rolls everything back. There is no undo.
func (s *EarningStore) Reset(kidID int64, now time.Time) (*model.EarningPeriod, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(
		`SELECT t.id, t.completed_at, t.time_to_complete, t.earnings_amount, c.title
		 FROM tasks t
		 INNER JOIN chores c ON c.id = t.chore_id
		 WHERE t.kid_id = ? AND t.status = ?
		 ORDER BY t.completed_at ASC, t.id ASC`,
		kidID, string(model.TaskApproved),
	)
	if err != nil {
		return nil, fmt.Errorf("list approved tasks: %w", err)
	}

	var (
		taskIDs     []int64
		summaries   []model.TaskSummary
		total       = decimal.Zero
		periodStart time.Time
	)
	for rows.Next() {
		var (
			id        int64
			completed sql.NullTime
			elapsed   sql.NullInt64
			amount    string
			title     string
		)
		if err := rows.Scan(&id, &completed, &elapsed, &amount, &title); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan approved task: %w", err)
		}

		earned, err := decimal.NewFromString(amount)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("parse earnings amount: %w", err)
		}
		total = total.Add(earned)

		sum := model.TaskSummary{ChoreTitle: title, AmountEarned: earned}
		if completed.Valid {
			sum.CompletedAt = completed.Time
			if periodStart.IsZero() || completed.Time.Before(periodStart) {
				periodStart = completed.Time
			}
		}
		if elapsed.Valid {
			sum.TimeToComplete = elapsed.Int64
		}
		summaries = append(summaries, sum)
		taskIDs = append(taskIDs, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate approved tasks: %w", err)
	}
	rows.Close()

	if len(taskIDs) == 0 {
		return nil, ErrNoEarnings
	}

	periodEnd := now.UTC()
	if periodStart.IsZero() {
		periodStart = periodEnd
	}

	breakdown, err := json.Marshal(summaries)
	if err != nil {
		return nil, fmt.Errorf("encode breakdown: %w", err)
	}

	var savingsSplit int
	var wealthStr string
	err = tx.QueryRow(`SELECT savings_split, net_wealth FROM kids WHERE id = ?`, kidID).
		Scan(&savingsSplit, &wealthStr)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("kid %d not found", kidID)
	}
	if err != nil {
		return nil, fmt.Errorf("get kid wealth: %w", err)
	}
	wealth, err := decimal.NewFromString(wealthStr)
	if err != nil {
		return nil, fmt.Errorf("parse net wealth: %w", err)
	}

	savings := money.Split(total, savingsSplit)

	result, err := tx.Exec(
		`INSERT INTO earning_periods (kid_id, period_start, period_end, total_earned, savings_amount, tasks_completed, breakdown)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		kidID, periodStart.UTC(), periodEnd, total.String(), savings.String(), len(taskIDs), string(breakdown),
	)
	if err != nil {
		return nil, fmt.Errorf("insert earning period: %w", err)
	}
	periodID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	_, err = tx.Exec(
		`UPDATE kids SET net_wealth = ?, updated_at = datetime('now') WHERE id = ?`,
		wealth.Add(total).String(), kidID,
	)
	if err != nil {
		return nil, fmt.Errorf("update net wealth: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(taskIDs)), ",")
	args := make([]any, len(taskIDs))
	for i, id := range taskIDs {
		args[i] = id
	}
	if _, err := tx.Exec(`DELETE FROM tasks WHERE id IN (`+placeholders+`)`, args...); err != nil {
		return nil, fmt.Errorf("delete summarized tasks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(periodID)
}

func (s *EarningStore) GetByID(id int64) (*model.EarningPeriod, error) {
	row := s.db.QueryRow(`SELECT `+periodCols+` FROM earning_periods WHERE id = ?`, id)
	p, err := scanPeriod(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get earning period: %w", err)
	}
	return p, nil
}

// ListByKid returns a kid's earning periods, newest first.
func (s *EarningStore) ListByKid(kidID int64) ([]model.EarningPeriod, error) {
	rows, err := s.db.Query(
		`SELECT `+periodCols+` FROM earning_periods WHERE kid_id = ? ORDER BY period_end DESC, id DESC`,
		kidID,
	)
	if err != nil {
		return nil, fmt.Errorf("list earning periods: %w", err)
	}
	defer rows.Close()

	periods := []model.EarningPeriod{}
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan earning period: %w", err)
		}
		periods = append(periods, *p)
	}
	return periods, rows.Err()
}
