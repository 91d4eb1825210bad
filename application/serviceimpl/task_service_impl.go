package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"tasks-api/domain/dto"
	"tasks-api/domain/models"
	"tasks-api/domain/ports"
	"tasks-api/domain/repositories"
	"tasks-api/domain/services"
	"tasks-api/pkg/logger"
)

const (
	statsCacheTTL       = 30 * time.Second
	statsCacheKeyPrefix = "task_stats:"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	cache    ports.Cache // nil when no cache is configured
}

func NewTaskService(taskRepo repositories.TaskRepository, cache ports.Cache) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		cache:    cache,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		UserID:      ownerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", ownerID, "error", err)
		return nil, err
	}

	s.invalidateStats(ctx, ownerID)

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", ownerID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID, ownerID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to load task", "task_id", taskID, "error", err)
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilterRequest) ([]*models.Task, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	repoFilter := repositories.TaskFilter{
		Priority: filter.Priority,
		Query:    filter.Query,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}

	tasks, err := s.taskRepo.List(ctx, ownerID, repoFilter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", ownerID, "error", err)
		return nil, 0, err
	}

	count, err := s.taskRepo.Count(ctx, ownerID, repoFilter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count tasks", "user_id", ownerID, "error", err)
		return nil, 0, err
	}

	return tasks, count, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID, ownerID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to load task for update", "task_id", taskID, "error", err)
		return nil, err
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	s.invalidateStats(ctx, ownerID)

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", ownerID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	s.invalidateStats(ctx, ownerID)

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", ownerID)

	return nil
}

// GetStats returns the caller's task counts. Results are cached for a
// short window when a cache is configured; a cache failure degrades to
// the database.
func (s *TaskServiceImpl) GetStats(ctx context.Context, ownerID uuid.UUID) (*dto.TaskStatsResponse, error) {
	key := statsCacheKeyPrefix + ownerID.String()

	if s.cache != nil {
		var cached dto.TaskStatsResponse
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, ports.ErrCacheMiss) {
			logger.WarnContext(ctx, "Stats cache read failed", "user_id", ownerID, "error", err)
		}
	}

	counts, err := s.taskRepo.CountByPriority(ctx, ownerID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute task stats", "user_id", ownerID, "error", err)
		return nil, err
	}

	stats := &dto.TaskStatsResponse{
		ByPriority: map[string]int64{
			models.PriorityLow:    counts[models.PriorityLow],
			models.PriorityMedium: counts[models.PriorityMedium],
			models.PriorityHigh:   counts[models.PriorityHigh],
		},
	}
	for _, n := range counts {
		stats.Total += n
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, stats, statsCacheTTL); err != nil {
			logger.WarnContext(ctx, "Stats cache write failed", "user_id", ownerID, "error", err)
		}
	}

	return stats, nil
}

func (s *TaskServiceImpl) invalidateStats(ctx context.Context, ownerID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKeyPrefix+ownerID.String()); err != nil {
		logger.WarnContext(ctx, "Stats cache invalidation failed", "user_id", ownerID, "error", err)
	}
}
