package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is how often a chore (or pocket-money payout) repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("invalid frequency %q", s)
}

// ChoreType distinguishes per-kid chores from first-come shared ones,
// where a single completion satisfies every kid for the period.
type ChoreType string

const (
	ChoreIndividual ChoreType = "individual"
	ChoreFirstCome  ChoreType = "first_come"
)

func ParseChoreType(s string) (ChoreType, error) {
	switch ChoreType(s) {
	case ChoreIndividual, ChoreFirstCome:
		return ChoreType(s), nil
	}
	return "", fmt.Errorf("invalid chore type %q", s)
}

type Chore struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	PaymentAmount  decimal.Decimal `json:"payment_amount"`
	Frequency      Frequency       `json:"frequency"`
	ChoreType      ChoreType       `json:"chore_type"`
	IsPrePopulated bool            `json:"is_pre_populated"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ChoreAssignment struct {
	ID        int64     `json:"id"`
	ChoreID   int64     `json:"chore_id"`
	KidID     int64     `json:"kid_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AssignedChore is a chore joined with the assignment that grants it to a kid.
type AssignedChore struct {
	Chore
	AssignmentID int64 `json:"assignment_id"`
}
