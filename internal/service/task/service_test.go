package task

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/fixtures"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/validator"
	"github.com/cmlabs-hris/team-tracker-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, now time.Time) task.TaskService {
	t.Helper()
	c := clock.Fixed(now)
	store := memory.NewStore(nil, c)
	store.Seed(fixtures.Default())
	return NewTaskService(store, memory.NewTaskRepository(store), memory.NewEmployeeRepository(store), c)
}

func findTask(t *testing.T, tasks []task.TaskResponse, id int) task.TaskResponse {
	t.Helper()
	for _, tk := range tasks {
		if tk.ID == id {
			return tk
		}
	}
	t.Fatalf("task %d not found", id)
	return task.TaskResponse{}
}

// ===== TASK SERVICE TESTS =====

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, time.Date(2024, 2, 10, 11, 0, 0, 0, time.UTC))

	got, err := svc.CreateTask(ctx, task.CreateTaskRequest{
		Title:      "  Quarterly close  ",
		AssignedTo: 5,
		DueDate:    "2024-02-20",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, got.ID)
	assert.Equal(t, "Quarterly close", got.Title)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, "medium", got.Priority)
	assert.Equal(t, task.DefaultAssignedBy, got.AssignedBy)
	assert.Equal(t, "2024-02-10", got.CreatedDate)
	assert.Equal(t, "Robert Shiller", got.AssignedToName)
	assert.Nil(t, got.CompletedDate)
}

func TestTaskService_CreateTask_Errors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	_, err := svc.CreateTask(ctx, task.CreateTaskRequest{AssignedTo: 1, DueDate: "soon", Priority: "urgent"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "title")
	assert.Contains(t, verrs.ToMap(), "due_date")
	assert.Contains(t, verrs.ToMap(), "priority")

	_, err = svc.CreateTask(ctx, task.CreateTaskRequest{Title: "x", AssignedTo: 42, DueDate: "2024-02-20"})
	assert.ErrorIs(t, err, task.ErrAssigneeNotFound)
}

func TestTaskService_OverdueScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, time.Date(2024, 2, 13, 8, 0, 0, 0, time.UTC))

	tasks, err := svc.ListTasks(ctx, task.TaskFilter{})
	require.NoError(t, err)

	invoice := findTask(t, tasks, 3)
	assert.True(t, invoice.IsOverdue)
	assert.Equal(t, "overdue", invoice.EffectiveStatus)
	assert.Equal(t, "pending", invoice.Status, "overdue is never stored")

	review := findTask(t, tasks, 4)
	assert.False(t, review.IsOverdue, "completed tasks are never overdue")
	require.NotNil(t, review.CompletedDate)
	assert.Equal(t, "2024-02-10", *review.CompletedDate)
	require.NotNil(t, review.CompletionType)
	assert.Equal(t, "late", *review.CompletionType)

	overdue, err := svc.ListTasks(ctx, task.TaskFilter{Status: "overdue"})
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, 3, overdue[0].ID)
}

func TestTaskService_DueTodayIsNotOverdue(t *testing.T) {
	svc := newTestService(t, time.Date(2024, 2, 12, 23, 59, 0, 0, time.UTC))

	tasks, err := svc.ListTasks(context.Background(), task.TaskFilter{EmployeeID: 3})

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].IsOverdue)
}

func TestTaskService_CompleteTask(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, time.Date(2024, 2, 14, 16, 0, 0, 0, time.UTC))

	got, err := svc.CompleteTask(ctx, task.CompleteTaskRequest{ID: 1, Completion: "on-time"})

	require.NoError(t, err)
	assert.Equal(t, "completed-on-time", got.Status)
	require.NotNil(t, got.CompletedDate)
	assert.Equal(t, "2024-02-14", *got.CompletedDate)

	_, err = svc.CompleteTask(ctx, task.CompleteTaskRequest{ID: 1, Completion: "late"})
	assert.ErrorIs(t, err, task.ErrTaskAlreadyCompleted)

	_, err = svc.CompleteTask(ctx, task.CompleteTaskRequest{ID: 99, Completion: "late"})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	_, err = svc.CompleteTask(ctx, task.CompleteTaskRequest{ID: 3, Completion: "someday"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestTaskService_UpdateTaskStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	got, err := svc.UpdateTaskStatus(ctx, task.UpdateTaskStatusRequest{ID: 3, Status: "in-progress"})
	require.NoError(t, err)
	assert.Equal(t, "in-progress", got.Status)

	reopened, err := svc.UpdateTaskStatus(ctx, task.UpdateTaskStatusRequest{ID: 2, Status: "pending"})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedDate)
	assert.Nil(t, reopened.CompletionType)

	for _, status := range []string{"completed-on-time", "completed-late", "overdue"} {
		_, err := svc.UpdateTaskStatus(ctx, task.UpdateTaskStatusRequest{ID: 3, Status: status})
		assert.ErrorIs(t, err, task.ErrInvalidStatusTransition, status)
	}

	_, err = svc.UpdateTaskStatus(ctx, task.UpdateTaskStatusRequest{ID: 99, Status: "pending"})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestTaskService_GetDistribution(t *testing.T) {
	svc := newTestService(t, time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC))

	items, err := svc.GetDistribution(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 7)

	byID := map[int]task.DistributionItem{}
	for _, it := range items {
		byID[it.EmployeeID] = it
	}
	assert.Equal(t, 1, byID[1].InProgress)
	assert.Equal(t, 1, byID[2].CompletedOnTime)
	assert.Equal(t, 1, byID[3].Pending)
	assert.Equal(t, 1, byID[3].Overdue)
	assert.Equal(t, 1, byID[6].CompletedLate)
	assert.Equal(t, 0, byID[7].Total)
}
