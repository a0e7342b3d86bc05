package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	const query = `
	SELECT id, user_id, title, done, due_date, category, completed_date, created_at, updated_at
	FROM tasks
	WHERE id = $1
	`
	return scanTask(r.pool.QueryRow(ctx, query, id))
}

func (r *taskRepository) List(ctx context.Context, userID string) ([]domain.Task, error) {
	const query = `
	SELECT id, user_id, title, done, due_date, category, completed_date, created_at, updated_at
	FROM tasks
	WHERE user_id = $1
	ORDER BY done, due_date, created_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
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

	const query = `
	INSERT INTO tasks (id, user_id, title, done, due_date, category, completed_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Done,
		task.DueDate.Time(),
		string(task.Category),
		nullDate(task.CompletedDate),
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, storageErr(err)
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET title = $2,
		done = $3,
		due_date = $4,
		category = $5,
		completed_date = $6,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.Title,
		task.Done,
		task.DueDate.Time(),
		string(task.Category),
		nullDate(task.CompletedDate),
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return storageErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) CountCompletedOn(ctx context.Context, userID string, date domain.Date) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM tasks
	WHERE user_id = $1 AND done AND completed_date = $2
	`
	var count int
	if err := r.pool.QueryRow(ctx, query, userID, date.Time()).Scan(&count); err != nil {
		return 0, storageErr(err)
	}
	return count, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	var (
		due       time.Time
		category  string
		completed *time.Time
	)

	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Done,
		&due,
		&category,
		&completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, storageErr(err)
	}

	task.DueDate = domain.DateOf(due.UTC())
	task.Category = domain.Category(category)
	task.CompletedDate = dateOf(completed)
	return &task, nil
}
