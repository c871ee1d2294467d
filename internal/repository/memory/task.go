package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
)

type taskRepositoryImpl struct {
	store *Store
}

func NewTaskRepository(store *Store) task.TaskRepository {
	return &taskRepositoryImpl{store: store}
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id int) (task.Task, error) {
	release := r.store.read(ctx)
	defer release()

	for _, t := range r.store.tasks {
		if t.ID == id {
			return cloneTask(t), nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context) ([]task.Task, error) {
	release := r.store.read(ctx)
	defer release()

	return cloneTasks(r.store.tasks), nil
}

// ListByAssignee implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, employeeID int) ([]task.Task, error) {
	release := r.store.read(ctx)
	defer release()

	var out []task.Task
	for _, t := range r.store.tasks {
		if t.AssignedTo == employeeID {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	if newTask.Status == "" {
		newTask.Status = task.StatusPending
	}
	newTask.DueDate = clock.DateOf(newTask.DueDate)
	newTask.CreatedDate = clock.DateOf(newTask.CreatedDate)

	release := r.store.write(ctx)
	maxID := 0
	for _, t := range r.store.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	newTask.ID = maxID + 1
	r.store.tasks = append(r.store.tasks, cloneTask(newTask))
	release()

	r.store.emit(ctx, event.CollectionTasks, event.ActionCreated, itoa(newTask.ID))
	return newTask, nil
}

// mutate applies fn to the task with the given id under the write lock.
func (r *taskRepositoryImpl) mutate(ctx context.Context, id int, fn func(t *task.Task)) (task.Task, error) {
	release := r.store.write(ctx)
	for i := range r.store.tasks {
		if r.store.tasks[i].ID != id {
			continue
		}
		fn(&r.store.tasks[i])
		updated := cloneTask(r.store.tasks[i])
		release()

		r.store.emit(ctx, event.CollectionTasks, event.ActionUpdated, itoa(id))
		return updated, nil
	}
	release()
	return task.Task{}, task.ErrTaskNotFound
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id int, status task.Status) (task.Task, error) {
	return r.mutate(ctx, id, func(t *task.Task) {
		t.Status = status
		if !status.IsCompleted() {
			t.CompletedDate = nil
			t.CompletionType = nil
		}
	})
}

// Complete implements task.TaskRepository.
func (r *taskRepositoryImpl) Complete(ctx context.Context, id int, kind task.CompletionType, completedOn time.Time) (task.Task, error) {
	day := clock.DateOf(completedOn)
	return r.mutate(ctx, id, func(t *task.Task) {
		t.Status = kind.Status()
		t.CompletedDate = &day
		t.CompletionType = &kind
	})
}
