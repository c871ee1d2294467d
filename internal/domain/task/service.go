package task

import "context"

type TaskService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	UpdateTaskStatus(ctx context.Context, req UpdateTaskStatusRequest) (TaskResponse, error)
	CompleteTask(ctx context.Context, req CompleteTaskRequest) (TaskResponse, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]TaskResponse, error)
	// GetDistribution summarizes task states per employee
	GetDistribution(ctx context.Context) ([]DistributionItem, error)
}
