package repository

import (
	"context"
	"errors"
	"time"

	columndomain "github.com/Real-Streeter/liberty-command/internal/column/domain"
	"github.com/Real-Streeter/liberty-command/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.ID == "" {
		task.ID = "task-" + uuid.NewString()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		err := tx.Model(&domain.Task{}).
			Where("column_id = ?", task.ColumnID).
			Select("COALESCE(MAX(sort_order), -1)").
			Scan(&maxOrder).Error
		if err != nil {
			return err
		}
		task.SortOrder = maxOrder + 1
		return tx.Omit("Column").Create(task).Error
	})
}

func (r *gormTaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.WithContext(ctx).
		Order("column_id ASC, sort_order ASC, created_at ASC, id ASC").
		Find(&tasks).Error
	return tasks, err
}

// Update writes content fields only; placement changes go through Reorder.
func (r *gormTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"content":    task.Content,
			"owner":      task.Owner,
			"tag":        task.Tag,
			"priority":   task.Priority,
			"estimate":   task.Estimate,
			"due_date":   task.DueDate,
			"updated_at": task.UpdatedAt,
		}).Error
}

func (r *gormTaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task domain.Task
		if err := tx.Where("id = ?", id).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&domain.Task{}, "id = ?", id).Error; err != nil {
			return err
		}
		deleted = true
		return renumberColumn(tx, task.ColumnID)
	})
	return deleted, err
}

// renumberColumn rewrites the positions of a column to a dense 0..n-1 run,
// keeping the current relative order.
func renumberColumn(tx *gorm.DB, columnID string) error {
	var siblings []domain.Task
	err := tx.Select("id", "sort_order").
		Where("column_id = ?", columnID).
		Order("sort_order ASC, created_at ASC, id ASC").
		Find(&siblings).Error
	if err != nil {
		return err
	}
	now := time.Now()
	for i, s := range siblings {
		if s.SortOrder == i {
			continue
		}
		err := tx.Model(&domain.Task{}).Where("id = ?", s.ID).
			Updates(map[string]interface{}{"sort_order": i, "updated_at": now}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *gormTaskRepository) Reorder(ctx context.Context, moves []domain.Move) error {
	if len(moves) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureColumnsExist(tx, moves); err != nil {
			return err
		}

		now := time.Now()
		for _, m := range moves {
			res := tx.Model(&domain.Task{}).
				Where("id = ?", m.TaskID).
				Updates(map[string]interface{}{
					"column_id":  m.ColumnID,
					"sort_order": m.SortOrder,
					"updated_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.MissingTaskError(m.TaskID)
			}
		}
		return nil
	})
}

func ensureColumnsExist(tx *gorm.DB, moves []domain.Move) error {
	wanted := make(map[string]struct{})
	ids := make([]string, 0, 4)
	for _, m := range moves {
		if _, ok := wanted[m.ColumnID]; ok {
			continue
		}
		wanted[m.ColumnID] = struct{}{}
		ids = append(ids, m.ColumnID)
	}

	var found []string
	err := tx.Model(&columndomain.Column{}).Where("id IN ?", ids).Pluck("id", &found).Error
	if err != nil {
		return err
	}
	for _, id := range found {
		delete(wanted, id)
	}
	for _, id := range ids {
		if _, missing := wanted[id]; missing {
			return domain.MissingColumnError(id)
		}
	}
	return nil
}
