// Package availability computes which assigned chores a kid may start
// right now. Daily chores block after a completion for the day; first-come
// daily chores block for every kid in the household once any kid completes
// them. Weekly and monthly chores are never auto-blocked.
package availability

import (
	"time"

	"chorejar/internal/model"
	"chorejar/internal/store"
)

// AvailableChore annotates an assigned chore with its startability for
// one kid on one day.
type AvailableChore struct {
	model.AssignedChore
	IsAvailable    bool `json:"is_available"`
	CompletedToday bool `json:"completed_today"`
}

// Location resolves an owner's configured timezone name, falling back to
// the server's local zone for empty or unknown names.
func Location(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// DayStart returns local midnight for the instant in the given zone.
func DayStart(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Decide applies the availability rules given the two completion facts.
func Decide(c model.Chore, completedToday, completedByAnyone bool) bool {
	if c.Frequency == model.FrequencyDaily && completedToday {
		return false
	}
	if c.ChoreType == model.ChoreFirstCome && c.Frequency == model.FrequencyDaily && completedByAnyone {
		return false
	}
	return true
}

type Resolver struct {
	chores *store.ChoreStore
	tasks  *store.TaskStore
}

func NewResolver(chores *store.ChoreStore, tasks *store.TaskStore) *Resolver {
	return &Resolver{chores: chores, tasks: tasks}
}

// ForKid returns the kid's assigned chores, in assignment order, annotated
// with availability relative to the owner's day boundary.
func (r *Resolver) ForKid(kidID int64, timezone string, now time.Time) ([]AvailableChore, error) {
	assigned, err := r.chores.ListAssignedToKid(kidID)
	if err != nil {
		return nil, err
	}

	dayStart := DayStart(now, Location(timezone))

	out := make([]AvailableChore, 0, len(assigned))
	for _, ac := range assigned {
		completedToday, err := r.tasks.HasCompletedSince(ac.ID, kidID, dayStart)
		if err != nil {
			return nil, err
		}

		completedByAnyone := false
		if ac.ChoreType == model.ChoreFirstCome && ac.Frequency == model.FrequencyDaily {
			completedByAnyone, err = r.tasks.AnyCompletedSince(ac.ID, dayStart)
			if err != nil {
				return nil, err
			}
		}

		out = append(out, AvailableChore{
			AssignedChore:  ac,
			IsAvailable:    Decide(ac.Chore, completedToday, completedByAnyone),
			CompletedToday: completedToday,
		})
	}
	return out, nil
}
