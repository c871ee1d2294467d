package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/repository/memory"
	"github.com/cmlabs-hris/team-tracker-go/internal/service/metrics"
)

type TaskServiceImpl struct {
	store        *memory.Store
	taskRepo     task.TaskRepository
	employeeRepo employee.EmployeeRepository
	now          clock.Clock
}

func NewTaskService(
	store *memory.Store,
	taskRepo task.TaskRepository,
	employeeRepo employee.EmployeeRepository,
	now clock.Clock,
) task.TaskService {
	return &TaskServiceImpl{
		store:        store,
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		now:          now,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(clock.DateLayout)
	return &s
}

func mapTaskToResponse(t task.Task, employees []employee.Employee, today time.Time) task.TaskResponse {
	var completionType *string
	if t.CompletionType != nil {
		s := string(*t.CompletionType)
		completionType = &s
	}

	return task.TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		AssignedTo:      t.AssignedTo,
		AssignedToName:  metrics.EmployeeName(employees, t.AssignedTo),
		AssignedBy:      t.AssignedBy,
		Priority:        string(t.Priority),
		Status:          string(t.Status),
		EffectiveStatus: string(metrics.EffectiveStatus(t, today)),
		IsOverdue:       metrics.IsOverdue(t, today),
		DueDate:         t.DueDate.Format(clock.DateLayout),
		CreatedDate:     t.CreatedDate.Format(clock.DateLayout),
		CompletedDate:   formatDate(t.CompletedDate),
		CompletionType:  completionType,
	}
}

func (s *TaskServiceImpl) respond(ctx context.Context, t task.Task) (task.TaskResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return mapTaskToResponse(t, employees, s.now.Today()), nil
}

// CreateTask implements task.TaskService.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.AssignedTo); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return task.TaskResponse{}, task.ErrAssigneeNotFound
		}
		return task.TaskResponse{}, err
	}

	created, err := s.taskRepo.Create(ctx, req.ToEntity(s.now.Today()))
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}
	return s.respond(ctx, created)
}

// UpdateTaskStatus implements task.TaskService. Only the open statuses can
// be set directly; completion goes through CompleteTask and overdue is
// derived.
func (s *TaskServiceImpl) UpdateTaskStatus(ctx context.Context, req task.UpdateTaskStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	status := task.Status(req.Status)
	if status != task.StatusPending && status != task.StatusInProgress {
		return task.TaskResponse{}, task.ErrInvalidStatusTransition
	}

	updated, err := s.taskRepo.UpdateStatus(ctx, req.ID, status)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task status: %w", err)
	}
	return s.respond(ctx, updated)
}

// CompleteTask implements task.TaskService.
func (s *TaskServiceImpl) CompleteTask(ctx context.Context, req task.CompleteTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	var completed task.Task
	err := s.store.WithTransaction(ctx, func(ctx context.Context) error {
		current, err := s.taskRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if !current.Status.CanComplete() {
			return task.ErrTaskAlreadyCompleted
		}
		completed, err = s.taskRepo.Complete(ctx, req.ID, task.CompletionType(req.Completion), s.now())
		return err
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to complete task: %w", err)
	}
	return s.respond(ctx, completed)
}

// ListTasks implements task.TaskService. The status filter matches the
// effective status, so "overdue" selects open tasks past their due date.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter task.TaskFilter) ([]task.TaskResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var (
		tasks []task.Task
		err   error
	)
	if filter.EmployeeID > 0 {
		tasks, err = s.taskRepo.ListByAssignee(ctx, filter.EmployeeID)
	} else {
		tasks, err = s.taskRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	today := s.now.Today()
	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp := mapTaskToResponse(t, employees, today)
		if filter.Status != "" && resp.EffectiveStatus != filter.Status {
			continue
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// GetDistribution implements task.TaskService.
func (s *TaskServiceImpl) GetDistribution(ctx context.Context) ([]task.DistributionItem, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	today := s.now.Today()
	items := make([]task.DistributionItem, 0, len(employees))
	for _, e := range employees {
		b := metrics.TaskBreakdownFor(tasks, e.ID, today)
		items = append(items, task.DistributionItem{
			EmployeeID:      e.ID,
			EmployeeName:    e.Name,
			Position:        e.Position,
			CompletedOnTime: b.CompletedOnTime,
			CompletedLate:   b.CompletedLate,
			InProgress:      b.InProgress,
			Pending:         b.Pending,
			Overdue:         b.Overdue,
			Total:           b.Total,
		})
	}
	return items, nil
}
