package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/fixtures"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/validator"
	"github.com/cmlabs-hris/team-tracker-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (employee.EmployeeService, *memory.Store) {
	t.Helper()
	now := clock.Fixed(testNow)
	store := memory.NewStore(nil, now)
	store.Seed(fixtures.Default())
	svc := NewEmployeeService(
		memory.NewEmployeeRepository(store),
		memory.NewAttendanceRepository(store),
		memory.NewTaskRepository(store),
		memory.NewWorkEntryRepository(store),
		now,
	)
	return svc, store
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:           "Nadia Rahman",
		Position:       "Payroll Officer",
		Department:     "Finance",
		Email:          "nadia.rahman@company.com",
		Performance:    78,
		Attendance:     90,
		TasksCompleted: 3,
		TotalTasks:     4,
	}
}

// ===== EMPLOYEE SERVICE TESTS =====

func TestEmployeeService_ListEmployees_Filters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name    string
		filter  employee.EmployeeFilter
		wantIDs []int
	}{
		{"no filter", employee.EmployeeFilter{}, []int{1, 2, 3, 4, 5, 6, 7}},
		{"query by name is case-insensitive", employee.EmployeeFilter{Query: "PETER"}, []int{4}},
		{"query by position", employee.EmployeeFilter{Query: "analyst"}, []int{2, 4}},
		{"department", employee.EmployeeFilter{Department: "Finance"}, []int{2, 4, 7}},
		{"department all", employee.EmployeeFilter{Department: "all"}, []int{1, 2, 3, 4, 5, 6, 7}},
		{"tier excellent", employee.EmployeeFilter{Tier: "excellent"}, []int{1, 4, 6, 7}},
		{"tier good", employee.EmployeeFilter{Tier: "good"}, []int{2, 3, 5}},
		{"tier needs-improvement", employee.EmployeeFilter{Tier: "needs-improvement"}, nil},
		{"combined", employee.EmployeeFilter{Department: "Accounting", Tier: "good"}, []int{3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListEmployees(ctx, tt.filter)
			require.NoError(t, err)

			var ids []int
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEmployeeService_ListEmployees_InvalidTier(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{Tier: "legendary"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "tier")
}

func TestEmployeeService_ListDepartments(t *testing.T) {
	svc, _ := newTestService(t)

	departments, err := svc.ListDepartments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Accounting", "Finance"}, departments)
}

func TestEmployeeService_GetEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	got, err := svc.GetEmployee(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Moaaz Ahmed", got.Name)
	assert.Equal(t, "excellent", got.Tier)

	_, err = svc.GetEmployee(ctx, 99)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.CreateEmployee(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, employee.DefaultAvatar, created.Avatar)
	assert.Equal(t, "needs-improvement", created.Tier)

	all, _ := svc.ListEmployees(ctx, employee.EmployeeFilter{})
	assert.Len(t, all, 8)
}

func TestEmployeeService_CreateEmployee_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name   string
		mutate func(r *employee.CreateEmployeeRequest)
		field  string
	}{
		{"blank name", func(r *employee.CreateEmployeeRequest) { r.Name = "   " }, "name"},
		{"missing department", func(r *employee.CreateEmployeeRequest) { r.Department = "" }, "department"},
		{"bad email", func(r *employee.CreateEmployeeRequest) { r.Email = "not-an-email" }, "email"},
		{"performance above 100", func(r *employee.CreateEmployeeRequest) { r.Performance = 101 }, "performance"},
		{"negative late comings", func(r *employee.CreateEmployeeRequest) { r.LateComings = -1 }, "late_comings"},
		{"completed above total", func(r *employee.CreateEmployeeRequest) { r.TasksCompleted = 9 }, "tasks_completed"},
		{"unknown status", func(r *employee.CreateEmployeeRequest) { r.Status = "retired" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreateEmployee(ctx, req)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}

	all, _ := svc.ListEmployees(ctx, employee.EmployeeFilter{})
	assert.Len(t, all, 7, "failed creates leave the collection unchanged")
}

func TestEmployeeService_UpdateEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	before, _ := svc.GetEmployee(ctx, 1)
	req := employee.UpdateEmployeeRequest{ID: 1, CreateEmployeeRequest: employee.CreateEmployeeRequest{
		Name:           before.Name,
		Position:       before.Position,
		Department:     before.Department,
		Email:          before.Email,
		Avatar:         before.Avatar,
		Performance:    before.Performance,
		Attendance:     before.Attendance,
		TasksCompleted: 29,
		TotalTasks:     30,
		LateComings:    before.LateComings,
		Status:         "on-leave",
	}}

	updated, err := svc.UpdateEmployee(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 29, updated.TasksCompleted)
	assert.Equal(t, "on-leave", updated.Status)

	other, _ := svc.GetEmployee(ctx, 2)
	assert.Equal(t, 25, other.TasksCompleted)
}

func TestEmployeeService_UpdateEmployee_UnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	req := employee.UpdateEmployeeRequest{ID: 42, CreateEmployeeRequest: validCreateRequest()}
	_, err := svc.UpdateEmployee(context.Background(), req)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_GetScorecard(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	attendanceRepo := memory.NewAttendanceRepository(store)
	for i, status := range []attendance.Status{attendance.StatusPresent, attendance.StatusLate, attendance.StatusAbsent, attendance.StatusPresent} {
		_, err := attendanceRepo.Create(ctx, attendance.Entry{
			ID:         "e6-" + string(rune('a'+i)),
			EmployeeID: 6,
			Date:       clock.MustDate("2024-02-05").AddDate(0, 0, i),
			Status:     status,
		})
		require.NoError(t, err)
	}

	card, err := svc.GetScorecard(ctx, 6)

	require.NoError(t, err)
	assert.Equal(t, "Barry Johnson", card.Employee.Name)
	assert.Equal(t, 97, card.Employee.Attendance, "stored value is not overwritten")
	assert.Equal(t, 75, card.LiveAttendanceRate)
	assert.Equal(t, 4, card.AttendanceEntries)
	assert.Equal(t, 93, card.TaskCompletionPercent)
	assert.Equal(t, 1, card.Tasks.CompletedLate)
	assert.Equal(t, 1, card.Tasks.Total)
	assert.Equal(t, 0, card.WorkHours.Entries)
	assert.Equal(t, "0.0", card.WorkHours.AverageHours)
}

func TestEmployeeService_GetScorecard_OverdueAndHours(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	card, err := svc.GetScorecard(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, card.Tasks.InProgress)
	assert.Equal(t, 0, card.Tasks.Overdue, "due 2024-02-15 is not overdue on 2024-02-10")
	assert.Equal(t, 1, card.WorkHours.Entries)
	assert.Equal(t, "8.0", card.WorkHours.TotalHours)
	assert.Equal(t, 0, card.LiveAttendanceRate, "no entries yields 0")
}
