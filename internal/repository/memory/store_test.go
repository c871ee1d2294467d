package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	changes []event.Change
}

func (r *recorder) Publish(change event.Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.changes {
		out = append(out, c.Name()+":"+c.ID)
	}
	return out
}

var testNow = time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, seed dashboard.Snapshot) (*Store, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := NewStore(rec, clock.Fixed(testNow))
	s.Seed(seed)
	return s, rec
}

func sampleEmployee(name string) employee.Employee {
	return employee.Employee{
		Name:           name,
		Position:       "Senior Accountant",
		Department:     "Accounting",
		Email:          "someone@company.com",
		Performance:    90,
		Attendance:     95,
		TasksCompleted: 5,
		TotalTasks:     10,
		Status:         employee.StatusActive,
	}
}

// ===== EMPLOYEES =====

func TestEmployeeRepository_Create_AssignsOneWhenEmpty(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestStore(t, dashboard.Snapshot{})
	repo := NewEmployeeRepository(s)

	created, err := repo.Create(ctx, sampleEmployee("Max Hamilton"))

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, []string{"employees.created:1"}, rec.names())
}

func TestEmployeeRepository_Create_AssignsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	seed := dashboard.Snapshot{Employees: []employee.Employee{
		withID(sampleEmployee("A"), 3),
		withID(sampleEmployee("B"), 7),
		withID(sampleEmployee("C"), 5),
	}}
	s, _ := newTestStore(t, seed)
	repo := NewEmployeeRepository(s)

	before, _ := repo.List(ctx)
	created, err := repo.Create(ctx, sampleEmployee("D"))
	require.NoError(t, err)
	after, _ := repo.List(ctx)

	assert.Equal(t, 8, created.ID)
	for _, e := range before {
		assert.Greater(t, created.ID, e.ID)
	}
	assert.Len(t, after, len(before)+1)
}

func TestEmployeeRepository_Create_BlankRequiredFieldIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestStore(t, dashboard.Snapshot{})
	repo := NewEmployeeRepository(s)

	e := sampleEmployee("  ")
	_, err := repo.Create(ctx, e)

	assert.ErrorIs(t, err, employee.ErrMissingRequiredField)
	all, _ := repo.List(ctx)
	assert.Empty(t, all)
	assert.Empty(t, rec.names())
}

func TestEmployeeRepository_Update_ReplacesOnlyMatchingRecord(t *testing.T) {
	ctx := context.Background()
	seed := dashboard.Snapshot{Employees: []employee.Employee{
		withID(sampleEmployee("A"), 1),
		withID(sampleEmployee("B"), 2),
		withID(sampleEmployee("C"), 3),
	}}
	s, _ := newTestStore(t, seed)
	repo := NewEmployeeRepository(s)
	before, _ := repo.List(ctx)

	changed := before[1]
	changed.TasksCompleted = 8
	require.NoError(t, repo.Update(ctx, changed))

	after, _ := repo.List(ctx)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, 8, after[1].TasksCompleted)
}

func TestEmployeeRepository_Update_Scenario(t *testing.T) {
	ctx := context.Background()
	orig := withID(sampleEmployee("Max Hamilton"), 1)
	s, _ := newTestStore(t, dashboard.Snapshot{Employees: []employee.Employee{orig}})
	repo := NewEmployeeRepository(s)

	upd := orig
	upd.TasksCompleted = 8
	upd.TotalTasks = 10
	require.NoError(t, repo.Update(ctx, upd))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, got.TasksCompleted)
	assert.Equal(t, 10, got.TotalTasks)
	assert.Equal(t, orig.Performance, got.Performance)
	assert.Equal(t, orig.Attendance, got.Attendance)
}

func TestEmployeeRepository_Update_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestStore(t, dashboard.Snapshot{Employees: []employee.Employee{withID(sampleEmployee("A"), 1)}})
	repo := NewEmployeeRepository(s)
	before, _ := repo.List(ctx)

	err := repo.Update(ctx, withID(sampleEmployee("Ghost"), 99))

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	after, _ := repo.List(ctx)
	assert.Equal(t, before, after)
	assert.Empty(t, rec.names())
}

func TestEmployeeRepository_InvariantsHoldAfterMutations(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, dashboard.Snapshot{})
	repo := NewEmployeeRepository(s)

	bad := sampleEmployee("Overflow")
	bad.Performance = 140
	bad.Attendance = -5
	bad.TasksCompleted = 12
	bad.TotalTasks = 10
	bad.LateComings = -1
	created, err := repo.Create(ctx, bad)
	require.NoError(t, err)

	created.TasksCompleted = 50
	require.NoError(t, repo.Update(ctx, created))

	all, _ := repo.List(ctx)
	for _, e := range all {
		assert.LessOrEqual(t, e.TasksCompleted, e.TotalTasks)
		assert.GreaterOrEqual(t, e.Performance, 0)
		assert.LessOrEqual(t, e.Performance, 100)
		assert.GreaterOrEqual(t, e.Attendance, 0)
		assert.LessOrEqual(t, e.Attendance, 100)
		assert.GreaterOrEqual(t, e.LateComings, 0)
	}
}

func TestEmployeeRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, dashboard.Snapshot{Employees: []employee.Employee{withID(sampleEmployee("A"), 1)}})
	repo := NewEmployeeRepository(s)

	list, _ := repo.List(ctx)
	list[0].Name = "Mutated"

	got, _ := repo.GetByID(ctx, 1)
	assert.Equal(t, "A", got.Name)
}

// ===== ATTENDANCE =====

func TestAttendanceRepository_AddThenUpdate(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestStore(t, dashboard.Snapshot{})
	repo := NewAttendanceRepository(s)

	entry := attendance.Entry{
		ID: "a1", EmployeeID: 1, Date: clock.MustDate("2024-02-08"),
		Status: attendance.StatusLate, TimeIn: "09:15", TimeOut: "17:00",
	}
	_, err := repo.Create(ctx, entry)
	require.NoError(t, err)

	entry.Status = attendance.StatusAbsent
	require.NoError(t, repo.Update(ctx, entry))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, got.Status)
	assert.Equal(t, attendance.NoTime, got.TimeIn)
	assert.Equal(t, attendance.NoTime, got.TimeOut)
	assert.Equal(t, []string{"attendance.created:a1", "attendance.updated:a1"}, rec.names())
}

func TestAttendanceRepository_NoPerDayDeduplication(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, dashboard.Snapshot{})
	repo := NewAttendanceRepository(s)
	date := clock.MustDate("2024-02-08")

	_, err := repo.Create(ctx, attendance.Entry{ID: "a1", EmployeeID: 1, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.Entry{ID: "a2", EmployeeID: 1, Date: date, Status: attendance.StatusLate})
	require.NoError(t, err)

	sameDay, _ := repo.ListByDate(ctx, date)
	assert.Len(t, sameDay, 2)
}

func TestAttendanceRepository_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, dashboard.Snapshot{})
	repo := NewAttendanceRepository(s)

	_, err := repo.Create(ctx, attendance.Entry{ID: "a1", EmployeeID: 1, Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.Entry{ID: "a1", EmployeeID: 2, Status: attendance.StatusPresent})

	assert.ErrorIs(t, err, attendance.ErrAttendanceIDExists)
}

func TestAttendanceRepository_UpdateUnknownID(t *testing.T) {
	s, _ := newTestStore(t, dashboard.Snapshot{})
	repo := NewAttendanceRepository(s)

	err := repo.Update(context.Background(), attendance.Entry{ID: "missing"})

	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceRepository_FindByEmployeeAndDate(t *testing.T) {
	ctx := context.Background()
	seed := dashboard.Snapshot{Attendance: []attendance.Entry{
		{ID: "x", EmployeeID: 1, Date: clock.MustDate("2024-02-07"), Status: attendance.StatusPresent},
		{ID: "y", EmployeeID: 1, Date: clock.MustDate("2024-02-08"), Status: attendance.StatusLate},
	}}
	s, _ := newTestStore(t, seed)
	repo := NewAttendanceRepository(s)

	got, err := repo.FindByEmployeeAndDate(ctx, 1, time.Date(2024, 2, 8, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "y", got.ID)

	_, err = repo.FindByEmployeeAndDate(ctx, 2, clock.MustDate("2024-02-08"))
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

// ===== TASKS =====

func TestTaskRepository_CreateCompleteReopen(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestStore(t, dashboard.Snapshot{})
	repo := NewTaskRepository(s)

	created, err := repo.Create(ctx, task.Task{
		Title: "Invoice Processing", AssignedTo: 3, Priority: task.PriorityHigh,
		DueDate: clock.MustDate("2024-02-12"), CreatedDate: clock.MustDate("2024-02-05"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, task.StatusPending, created.Status)

	done, err := repo.Complete(ctx, created.ID, task.CompletionLate, testNow)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompletedLate, done.Status)
	require.NotNil(t, done.CompletedDate)
	assert.Equal(t, clock.MustDate("2024-02-10"), *done.CompletedDate)
	require.NotNil(t, done.CompletionType)
	assert.Equal(t, task.CompletionLate, *done.CompletionType)

	reopened, err := repo.UpdateStatus(ctx, created.ID, task.StatusPending)
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedDate)
	assert.Nil(t, reopened.CompletionType)

	assert.Equal(t, []string{"tasks.created:1", "tasks.updated:1", "tasks.updated:1"}, rec.names())
}

func TestTaskRepository_UnknownID(t *testing.T) {
	s, _ := newTestStore(t, dashboard.Snapshot{})
	repo := NewTaskRepository(s)

	_, err := repo.UpdateStatus(context.Background(), 4, task.StatusInProgress)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	_, err = repo.Complete(context.Background(), 4, task.CompletionOnTime, testNow)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestTaskRepository_ReturnedTaskDoesNotAliasStore(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, dashboard.Snapshot{})
	repo := NewTaskRepository(s)
	created, _ := repo.Create(ctx, task.Task{Title: "T", AssignedTo: 1, DueDate: testNow})
	done, _ := repo.Complete(ctx, created.ID, task.CompletionOnTime, testNow)

	*done.CompletedDate = time.Time{}

	again, _ := repo.GetByID(ctx, created.ID)
	assert.Equal(t, clock.MustDate("2024-02-10"), *again.CompletedDate)
}

// ===== WORK ENTRIES =====

func TestWorkEntryRepository_ApproveOnlyFromSubmitted(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, dashboard.Snapshot{})
	repo := NewWorkEntryRepository(s)

	created, err := repo.Create(ctx, workentry.WorkEntry{
		EmployeeID: 2, Date: clock.MustDate("2024-02-08"), Tasks: []string{"Data analysis"},
		HoursWorked: decimal.RequireFromString("7.5"), Description: "Variance report",
		SubmittedAt: testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, workentry.StatusSubmitted, created.Status)

	approved, err := repo.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, workentry.StatusApproved, approved.Status)

	_, err = repo.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, workentry.ErrInvalidStatusTransition)

	_, err = repo.Approve(ctx, 99)
	assert.ErrorIs(t, err, workentry.ErrWorkEntryNotFound)
}

// ===== TRANSACTIONS =====

func TestStore_WithTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestStore(t, dashboard.Snapshot{})
	employees := NewEmployeeRepository(s)
	tasks := NewTaskRepository(s)
	boom := errors.New("boom")

	err := s.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := employees.Create(ctx, sampleEmployee("A")); err != nil {
			return err
		}
		if _, err := tasks.Create(ctx, task.Task{Title: "T", AssignedTo: 1}); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	allEmployees, _ := employees.List(ctx)
	allTasks, _ := tasks.List(ctx)
	assert.Empty(t, allEmployees)
	assert.Empty(t, allTasks)
	assert.Empty(t, rec.names(), "rolled back changes are never published")
}

func TestStore_WithTransaction_PublishesAfterCommit(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestStore(t, dashboard.Snapshot{})
	employees := NewEmployeeRepository(s)

	err := s.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := employees.Create(ctx, sampleEmployee("A"))
		assert.Empty(t, rec.names(), "nothing published before commit")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"employees.created:1"}, rec.names())
}

func TestStore_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, dashboard.Snapshot{})
	repo := NewEmployeeRepository(s)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, sampleEmployee("Worker"))
		}()
	}
	wg.Wait()

	all, _ := repo.List(ctx)
	seen := map[int]bool{}
	for _, e := range all {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, all, 50)
}

func withID(e employee.Employee, id int) employee.Employee {
	e.ID = id
	return e
}
