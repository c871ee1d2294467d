package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers groups every HTTP handler mounted by NewRouter
type Handlers struct {
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Task       TaskHandler
	WorkEntry  WorkEntryHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
	Stream     StreamHandler
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.Dashboard.GetDashboard)
		r.Get("/events", h.Stream.Stream)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Get("/departments", h.Employee.ListDepartments)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)
				r.Put("/", h.Employee.UpdateEmployee)
				r.Get("/scorecard", h.Employee.GetScorecard)
				r.Get("/attendance-rate", h.Employee.GetAttendanceRate)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.ListAttendance)
			r.Post("/", h.Attendance.AddAttendance)
			r.Post("/record", h.Attendance.RecordAttendance)
			r.Get("/summary", h.Attendance.GetDailySummary)
			r.Put("/{id}", h.Attendance.UpdateAttendance)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.Task.ListTasks)
			r.Post("/", h.Task.CreateTask)
			r.Get("/distribution", h.Task.GetDistribution)
			r.Route("/{id}", func(r chi.Router) {
				r.Patch("/status", h.Task.UpdateTaskStatus)
				r.Post("/complete", h.Task.CompleteTask)
			})
		})

		r.Route("/work-entries", func(r chi.Router) {
			r.Get("/", h.WorkEntry.ListWorkEntries)
			r.Post("/", h.WorkEntry.AddWorkEntry)
			r.Get("/summary", h.WorkEntry.GetHoursSummary)
			r.Post("/{id}/approve", h.WorkEntry.ApproveWorkEntry)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/performance", h.Report.GetPerformanceReport)
			r.Get("/performance.xlsx", h.Report.ExportPerformanceReport)
		})
	})

	return r
}
