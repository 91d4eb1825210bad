package services

import (
	"context"

	"github.com/google/uuid"

	"tasks-api/domain/dto"
	"tasks-api/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID, ownerID uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilterRequest) ([]*models.Task, int64, error)
	UpdateTask(ctx context.Context, taskID, ownerID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error
	GetStats(ctx context.Context, ownerID uuid.UUID) (*dto.TaskStatsResponse, error)
}
