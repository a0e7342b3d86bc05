package bolt

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/repository"
)

// taskDoc carries the bucket sequence number so listing can break ordering
// ties by insertion order.
type taskDoc struct {
	domain.Task
	Seq uint64 `json:"seq"`
}

type taskRepository struct {
	store *Store
}

// NewTaskRepository returns a bolt-backed implementation of TaskRepository.
func NewTaskRepository(store *Store) repository.TaskRepository {
	return &taskRepository{store: store}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task *domain.Task
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketTasks).Get([]byte(id))
		if raw == nil {
			return domain.ErrTaskNotFound
		}
		var doc taskDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		task = &doc.Task
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return task, nil
}

func (r *taskRepository) List(ctx context.Context, userID string) ([]domain.Task, error) {
	var docs []taskDoc
	err := r.store.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTasks).ForEach(func(_, raw []byte) error {
			var doc taskDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				return err
			}
			if doc.UserID == userID {
				docs = append(docs, doc)
			}
			return nil
		})
	})
	if err != nil {
		return nil, storageErr(err)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if a.Done != b.Done {
			return !a.Done
		}
		if a.DueDate != b.DueDate {
			return a.DueDate.Before(b.DueDate)
		}
		return a.Seq < b.Seq
	})

	var tasks []domain.Task
	for i := range docs {
		tasks = append(tasks, docs[i].Task)
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
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		payload, err := json.Marshal(taskDoc{Task: *task, Seq: seq})
		if err != nil {
			return err
		}
		return bucket.Put([]byte(task.ID), payload)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		raw := bucket.Get([]byte(task.ID))
		if raw == nil {
			return domain.ErrTaskNotFound
		}
		var doc taskDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}

		task.CreatedAt = doc.CreatedAt
		task.UpdatedAt = time.Now()
		doc.Task = *task

		payload, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(task.ID), payload)
	})
	return storageErr(err)
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		if bucket.Get([]byte(id)) == nil {
			return domain.ErrTaskNotFound
		}
		return bucket.Delete([]byte(id))
	})
	return storageErr(err)
}

func (r *taskRepository) CountCompletedOn(ctx context.Context, userID string, date domain.Date) (int, error) {
	var count int
	err := r.store.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTasks).ForEach(func(_, raw []byte) error {
			var doc taskDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				return err
			}
			if doc.UserID == userID && doc.Done && doc.CompletedDate == date {
				count++
			}
			return nil
		})
	})
	if err != nil {
		return 0, storageErr(err)
	}
	return count, nil
}
