package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tasks-api/domain/models"
)

// TaskFilter narrows owner-scoped list queries. Zero values mean
// "no constraint"; Limit must be set by the caller.
type TaskFilter struct {
	Priority string
	Query    string // case-insensitive title substring
	Offset   int
	Limit    int
}

// TaskRepository persists tasks. Every single-task operation takes the
// owner's ID and matches on (id, user_id) jointly; a task ID alone is
// never enough to reach a record.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Task, error)
	List(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]*models.Task, error)
	Count(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) (int64, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	CountByPriority(ctx context.Context, ownerID uuid.UUID) (map[string]int64, error)
	PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error)
}
