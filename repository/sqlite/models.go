package sqlite

import (
	"time"

	"github.com/lifebot/backend/domain"
)

// Record types keep GORM column mapping out of the domain package.

type userRecord struct {
	ID        string `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex"`
	CreatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

type taskRecord struct {
	ID            string `gorm:"primaryKey"`
	UserID        string `gorm:"index"`
	Title         string
	Done          bool `gorm:"default:false"`
	DueDate       time.Time
	Category      string
	CompletedDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (taskRecord) TableName() string { return "tasks" }

type historyRecord struct {
	UserID         string    `gorm:"primaryKey"`
	Date           time.Time `gorm:"primaryKey"`
	CompletedCount int       `gorm:"default:0"`
}

func (historyRecord) TableName() string { return "history" }

type journalRecord struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Entry     string
	Mood      string
	Date      time.Time
	CreatedAt time.Time
}

func (journalRecord) TableName() string { return "journals" }

type mealRecord struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Date      time.Time
	MealType  string
	MealName  string
	Mood      string
	CreatedAt time.Time
}

func (mealRecord) TableName() string { return "meals" }

func (rec *taskRecord) toDomain() *domain.Task {
	task := &domain.Task{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Title:     rec.Title,
		Done:      rec.Done,
		DueDate:   domain.DateOf(rec.DueDate.UTC()),
		Category:  domain.Category(rec.Category),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.CompletedDate != nil {
		task.CompletedDate = domain.DateOf(rec.CompletedDate.UTC())
	}
	return task
}

func taskToRecord(task *domain.Task) *taskRecord {
	rec := &taskRecord{
		ID:        task.ID,
		UserID:    task.UserID,
		Title:     task.Title,
		Done:      task.Done,
		DueDate:   task.DueDate.Time(),
		Category:  string(task.Category),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
	if !task.CompletedDate.IsZero() {
		completed := task.CompletedDate.Time()
		rec.CompletedDate = &completed
	}
	return rec
}
