package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TaskStatus tracks a task through its lifecycle:
// in_progress -> pending_approval -> approved | rejected.
// Rejection is a terminal status, not a delete, so the attempt stays on record.
type TaskStatus string

const (
	TaskInProgress      TaskStatus = "in_progress"
	TaskPendingApproval TaskStatus = "pending_approval"
	TaskApproved        TaskStatus = "approved"
	TaskRejected        TaskStatus = "rejected"
)

func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case TaskInProgress, TaskPendingApproval, TaskApproved, TaskRejected:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("invalid task status %q", s)
}

// Task is one attempt by a kid at a chore. EarningsAmount is copied from the
// chore's payment amount when the task starts and never changes afterward.
type Task struct {
	ID             int64           `json:"id"`
	ChoreID        int64           `json:"chore_id"`
	KidID          int64           `json:"kid_id"`
	Status         TaskStatus      `json:"status"`
	StartedAt      *time.Time      `json:"started_at"`
	CompletedAt    *time.Time      `json:"completed_at"`
	TimeToComplete *int64          `json:"time_to_complete"`
	PhotoURL       *string         `json:"photo_url"`
	EarningsAmount decimal.Decimal `json:"earnings_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}
