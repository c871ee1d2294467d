package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnounceOverdueTasks(t *testing.T) {
	ctx := context.Background()
	current := clock.MustDate("2024-02-12")
	now := clock.Clock(func() time.Time { return current })

	store := memory.NewStore(nil, now)
	store.Seed(dashboard.Snapshot{Tasks: []task.Task{
		{ID: 1, Title: "Monthly Financial Report", AssignedTo: 1, Status: task.StatusInProgress, DueDate: clock.MustDate("2024-02-15")},
		{ID: 3, Title: "Invoice Processing", AssignedTo: 3, Status: task.StatusPending, DueDate: clock.MustDate("2024-02-12")},
		{ID: 4, Title: "Tax Documentation Review", AssignedTo: 6, Status: task.StatusCompletedLate, DueDate: clock.MustDate("2024-02-08")},
	}})

	var got []event.Change
	jobs := NewOverdueJobs(memory.NewTaskRepository(store), event.PublisherFunc(func(c event.Change) {
		got = append(got, c)
	}), now)

	require.NoError(t, jobs.AnnounceOverdueTasks(ctx))
	assert.Empty(t, got, "same day as start announces nothing")

	current = clock.MustDate("2024-02-13")
	require.NoError(t, jobs.AnnounceOverdueTasks(ctx))
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "tasks.overdue", got[0].Name())

	require.NoError(t, jobs.AnnounceOverdueTasks(ctx))
	assert.Len(t, got, 1, "a task is announced once")

	current = clock.MustDate("2024-02-20")
	require.NoError(t, jobs.AnnounceOverdueTasks(ctx))
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[1].ID)
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var calls int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var calls int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()
}
