package serviceimpl

import (
	"context"
	"time"

	"tasks-api/domain/repositories"
	"tasks-api/pkg/logger"
	"tasks-api/pkg/scheduler"
)

// TaskRetentionConfig controls when soft-deleted tasks are purged for
// good. Deleted tasks are already invisible to the API; the purge only
// reclaims storage.
type TaskRetentionConfig struct {
	PurgeCron string        // default: 3 AM daily
	MaxAge    time.Duration // how long a soft-deleted task is kept
}

type TaskRetentionService struct {
	config    TaskRetentionConfig
	taskRepo  repositories.TaskRepository
	scheduler scheduler.EventScheduler
}

func NewTaskRetentionService(
	config TaskRetentionConfig,
	taskRepo repositories.TaskRepository,
	eventScheduler scheduler.EventScheduler,
) *TaskRetentionService {
	if config.PurgeCron == "" {
		config.PurgeCron = "0 3 * * *"
	}
	if config.MaxAge == 0 {
		config.MaxAge = 30 * 24 * time.Hour
	}

	return &TaskRetentionService{
		config:    config,
		taskRepo:  taskRepo,
		scheduler: eventScheduler,
	}
}

func (s *TaskRetentionService) RegisterPurgeJob() error {
	return s.scheduler.AddJob("task_retention_purge", s.config.PurgeCron, func() {
		s.RunPurge(context.Background())
	})
}

func (s *TaskRetentionService) RunPurge(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.MaxAge)

	purged, err := s.taskRepo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		logger.ErrorContext(ctx, "Task retention purge failed", "error", err)
		return
	}

	if purged > 0 {
		logger.InfoContext(ctx, "Purged soft-deleted tasks", "count", purged, "cutoff", cutoff.Format(time.RFC3339))
	}
}
