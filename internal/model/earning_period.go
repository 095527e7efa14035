package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// EarningPeriod is an immutable snapshot produced when a kid's accrued
// earnings are rolled into net wealth. The summarized tasks are deleted;
// the breakdown keeps their record.
type EarningPeriod struct {
	ID             int64           `json:"id"`
	KidID          int64           `json:"kid_id"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	SavingsAmount  decimal.Decimal `json:"savings_amount"`
	TasksCompleted int             `json:"tasks_completed"`
	Breakdown      json.RawMessage `json:"breakdown"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TaskSummary is one entry in an earning period's breakdown.
type TaskSummary struct {
	ChoreTitle     string          `json:"chore_title"`
	CompletedAt    time.Time       `json:"completed_at"`
	TimeToComplete int64           `json:"time_to_complete"`
	AmountEarned   decimal.Decimal `json:"amount_earned"`
}
