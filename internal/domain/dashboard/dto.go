package dashboard

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Team            TeamSummaryResponse     `json:"team"`
	Tasks           TaskSummaryResponse     `json:"tasks"`
	Tiers           TierCountsResponse      `json:"tiers"`
	AttendanceToday AttendanceTodayResponse `json:"attendance_today"`
	TopPerformers   []PerformerItem         `json:"top_performers"`
	Date            string                  `json:"date"` // Format: "YYYY-MM-DD"
}

// ========== TEAM SUMMARY ==========

// TeamSummaryResponse holds the header statistics
type TeamSummaryResponse struct {
	TotalEmployees     int `json:"total_employees"`
	ActiveEmployees    int `json:"active_employees"`
	AveragePerformance int `json:"average_performance"` // rounded, 0 for an empty team
	AverageAttendance  int `json:"average_attendance"`  // rounded, 0 for an empty team
	TotalLateComings   int `json:"total_late_comings"`
}

// ========== TASKS ==========

// TaskSummaryResponse aggregates the employee task counters and task records
type TaskSummaryResponse struct {
	TasksCompleted int `json:"tasks_completed"`
	TotalTasks     int `json:"total_tasks"`
	CompletionRate int `json:"completion_rate"` // percent of total_tasks
	OpenTasks      int `json:"open_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
}

// ========== PERFORMANCE TIERS ==========

type TierCountsResponse struct {
	Excellent        int `json:"excellent"`
	Good             int `json:"good"`
	NeedsImprovement int `json:"needs_improvement"`
}

// ========== DAILY ATTENDANCE ==========

type AttendanceTodayResponse struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}

// PerformerItem is one row of the top performers list
type PerformerItem struct {
	EmployeeID  int    `json:"employee_id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Performance int    `json:"performance"`
	Tier        string `json:"tier"`
}
