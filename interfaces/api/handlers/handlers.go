package handlers

import "tasks-api/domain/services"

type Handlers struct {
	UserHandler *UserHandler
	TaskHandler *TaskHandler
}

func NewHandlers(userService services.UserService, taskService services.TaskService) *Handlers {
	return &Handlers{
		UserHandler: NewUserHandler(userService),
		TaskHandler: NewTaskHandler(taskService),
	}
}
