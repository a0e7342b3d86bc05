package sqlite

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository returns a SQLite-backed implementation of TaskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var rec taskRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, notFound(err, domain.ErrTaskNotFound)
	}
	return rec.toDomain(), nil
}

func (r *taskRepository) List(ctx context.Context, userID string) ([]domain.Task, error) {
	var recs []taskRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("done, due_date, created_at").
		Find(&recs).Error; err != nil {
		return nil, storageErr(err)
	}

	var tasks []domain.Task
	for i := range recs {
		tasks = append(tasks, *recs[i].toDomain())
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	rec := taskToRecord(task)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, storageErr(err)
	}
	task.CreatedAt = rec.CreatedAt
	task.UpdatedAt = rec.UpdatedAt
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	rec := taskToRecord(task)
	result := r.db.WithContext(ctx).Model(&taskRecord{}).Where("id = ?", task.ID).
		Select("Title", "Done", "DueDate", "Category", "CompletedDate").
		Updates(rec)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&taskRecord{})
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) CountCompletedOn(ctx context.Context, userID string, date domain.Date) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&taskRecord{}).
		Where("user_id = ? AND done = ? AND completed_date = ?", userID, true, date.Time()).
		Count(&count).Error; err != nil {
		return 0, storageErr(err)
	}
	return int(count), nil
}
