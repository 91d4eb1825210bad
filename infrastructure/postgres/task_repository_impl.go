package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasks-api/domain/models"
	"tasks-api/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID matches on (id, user_id) jointly. A task owned by someone
// else is reported exactly like a missing task.
func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&task).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, ownerID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.scoped(ctx, ownerID, filter).
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Count(ctx context.Context, ownerID uuid.UUID, filter repositories.TaskFilter) (int64, error) {
	var count int64
	err := r.scoped(ctx, ownerID, filter).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"priority":    task.Priority,
			"updated_at":  task.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) CountByPriority(ctx context.Context, ownerID uuid.UUID) (map[string]int64, error) {
	type row struct {
		Priority string
		Count    int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("priority, count(*) as count").
		Where("user_id = ?", ownerID).
		Group("priority").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Priority] = rw.Count
	}
	return counts, nil
}

// PurgeDeleted hard-deletes tasks that were soft-deleted before the
// cutoff. Used by the retention job only.
func (r *TaskRepositoryImpl) PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", olderThan).
		Delete(&models.Task{})
	return result.RowsAffected, result.Error
}

func (r *TaskRepositoryImpl) scoped(ctx context.Context, ownerID uuid.UUID, filter repositories.TaskFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("user_id = ?", ownerID)

	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.Query != "" {
		q = q.Where("title ILIKE ?", "%"+filter.Query+"%")
	}

	return q
}
