package domain

import "time"

// Category classifies a task.
type Category string

const (
	CategoryStudy    Category = "Study"
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryHealth   Category = "Health"
	CategoryFitness  Category = "Fitness"
	CategoryOther    Category = "Other"
)

// Categories lists every valid task category.
var Categories = []Category{
	CategoryStudy,
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryFitness,
	CategoryOther,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Task represents a user-owned to-do item.
//
// CompletedDate is set exactly when Done is true; the pair always changes in
// the same write so a half-completed task is never observable.
type Task struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Done          bool      `json:"done"`
	DueDate       Date      `json:"due_date"`
	Category      Category  `json:"category"`
	CompletedDate Date      `json:"completed_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Complete marks the task done as of the given calendar date.
func (t *Task) Complete(on Date) {
	if t == nil {
		return
	}
	t.Done = true
	t.CompletedDate = on
}

// Reopen clears the completion state.
func (t *Task) Reopen() {
	if t == nil {
		return
	}
	t.Done = false
	t.CompletedDate = Date{}
}
