package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/service/metrics"
	"golang.org/x/sync/errgroup"
)

// topPerformerCount caps the top performers list
const topPerformerCount = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	now clock.Clock
}

func NewDashboardService(repo dashboard.DashboardRepository, now clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		now:                 now,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines.
// Every section reads the same snapshot, so the numbers agree with each other.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot store: %w", err)
	}

	today := s.now.Today()

	var (
		team            dashboard.TeamSummaryResponse
		tasks           dashboard.TaskSummaryResponse
		tiers           dashboard.TierCountsResponse
		attendanceToday dashboard.AttendanceTodayResponse
		topPerformers   []dashboard.PerformerItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Team summary
	g.Go(func() error {
		active := 0
		for _, e := range snap.Employees {
			if e.Status == employee.StatusActive {
				active++
			}
		}
		team = dashboard.TeamSummaryResponse{
			TotalEmployees:     len(snap.Employees),
			ActiveEmployees:    active,
			AveragePerformance: metrics.Round(metrics.AveragePerformance(snap.Employees)),
			AverageAttendance:  metrics.Round(metrics.AverageAttendance(snap.Employees)),
			TotalLateComings:   metrics.TotalLateComings(snap.Employees),
		}
		return gCtx.Err()
	})

	// 2. Tasks
	g.Go(func() error {
		var completed, total, open int
		for _, e := range snap.Employees {
			completed += e.TasksCompleted
			total += e.TotalTasks
		}
		for _, t := range snap.Tasks {
			if !t.Status.IsCompleted() {
				open++
			}
		}
		tasks = dashboard.TaskSummaryResponse{
			TasksCompleted: completed,
			TotalTasks:     total,
			CompletionRate: metrics.Round(metrics.TaskCompletionRate(snap.Employees)),
			OpenTasks:      open,
			OverdueTasks:   metrics.CountOverdue(snap.Tasks, today),
		}
		return gCtx.Err()
	})

	// 3. Performance tiers
	g.Go(func() error {
		for _, e := range snap.Employees {
			switch metrics.ClassifyPerformance(e.Performance) {
			case employee.TierExcellent:
				tiers.Excellent++
			case employee.TierGood:
				tiers.Good++
			default:
				tiers.NeedsImprovement++
			}
		}
		return gCtx.Err()
	})

	// 4. Today's attendance
	g.Go(func() error {
		counts := metrics.DailyAttendance(snap.Attendance, today)
		attendanceToday = dashboard.AttendanceTodayResponse{
			Present: counts.Present,
			Late:    counts.Late,
			Absent:  counts.Absent,
			Total:   counts.Total(),
		}
		return gCtx.Err()
	})

	// 5. Top performers
	g.Go(func() error {
		ranked := append([]employee.Employee(nil), snap.Employees...)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Performance > ranked[j].Performance
		})
		if len(ranked) > topPerformerCount {
			ranked = ranked[:topPerformerCount]
		}
		topPerformers = make([]dashboard.PerformerItem, 0, len(ranked))
		for _, e := range ranked {
			topPerformers = append(topPerformers, dashboard.PerformerItem{
				EmployeeID:  e.ID,
				Name:        e.Name,
				Position:    e.Position,
				Performance: e.Performance,
				Tier:        string(metrics.ClassifyPerformance(e.Performance)),
			})
		}
		return gCtx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Team:            team,
		Tasks:           tasks,
		Tiers:           tiers,
		AttendanceToday: attendanceToday,
		TopPerformers:   topPerformers,
		Date:            today.Format(clock.DateLayout),
	}, nil
}
