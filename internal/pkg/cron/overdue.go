package cron

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/service/metrics"
)

// OverdueJobs announces tasks that became overdue since the last run. Nothing
// in the store changes when a due date passes, so without this no change
// event would tell open views to refresh.
type OverdueJobs struct {
	taskRepo  task.TaskRepository
	publisher event.Publisher
	now       clock.Clock

	mu      sync.Mutex
	lastDay time.Time
}

func NewOverdueJobs(taskRepo task.TaskRepository, publisher event.Publisher, now clock.Clock) *OverdueJobs {
	return &OverdueJobs{
		taskRepo:  taskRepo,
		publisher: publisher,
		now:       now,
		lastDay:   now.Today(),
	}
}

func (j *OverdueJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("announce_overdue_tasks", 1*time.Minute, j.AnnounceOverdueTasks)
}

// AnnounceOverdueTasks publishes a tasks.overdue change for every task that
// is overdue today but was not on the previous day seen by the job.
func (j *OverdueJobs) AnnounceOverdueTasks(ctx context.Context) error {
	today := j.now.Today()

	j.mu.Lock()
	previous := j.lastDay
	if !today.After(previous) {
		j.mu.Unlock()
		return nil
	}
	j.lastDay = today
	j.mu.Unlock()

	tasks, err := j.taskRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	announced := 0
	for _, t := range tasks {
		if metrics.IsOverdue(t, today) && !metrics.IsOverdue(t, previous) {
			j.publisher.Publish(event.Change{
				Collection: event.CollectionTasks,
				Action:     event.ActionOverdue,
				ID:         strconv.Itoa(t.ID),
				At:         j.now(),
			})
			announced++
		}
	}

	slog.Info("Cron: Overdue tasks announced", "date", today.Format(clock.DateLayout), "count", announced)
	return nil
}
