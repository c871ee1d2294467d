package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/config"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/cmlabs-hris/team-tracker-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/team-tracker-go/internal/handler/http"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/cron"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/relay"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/sse"
	"github.com/cmlabs-hris/team-tracker-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/team-tracker-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/team-tracker-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/team-tracker-go/internal/service/employee"
	reportService "github.com/cmlabs-hris/team-tracker-go/internal/service/report"
	taskService "github.com/cmlabs-hris/team-tracker-go/internal/service/task"
	workEntryService "github.com/cmlabs-hris/team-tracker-go/internal/service/workentry"
	"github.com/go-chi/httplog/v3"
)

const appVersion = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "team-tracker"),
		slog.String("version", appVersion),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	now := cfg.Clock()
	hub := sse.NewHub()
	publishers := event.Publishers{hub}

	// The relay outlives the HTTP server so changes from draining requests are still sent
	relayCtx, stopRelay := context.WithCancel(context.Background())
	defer stopRelay()
	var relayDone chan struct{}
	if cfg.Kafka.Enabled() {
		changeRelay := relay.New(relay.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), 0)
		publishers = append(publishers, changeRelay)
		relayDone = make(chan struct{})
		go func() {
			defer close(relayDone)
			if err := changeRelay.Run(relayCtx); err != nil {
				logger.Error("Change relay stopped", "error", err)
			}
		}()
		logger.Info("Relaying changes to Kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	store := memory.NewStore(publishers, now)
	if cfg.App.SeedFixtures {
		store.Seed(fixtures.Default())
	}

	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	taskRepo := memory.NewTaskRepository(store)
	workEntryRepo := memory.NewWorkEntryRepository(store)
	dashboardRepo := memory.NewDashboardRepository(store)

	attendanceSvc := attendanceService.NewAttendanceService(store, attendanceRepo, employeeRepo, now)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo, taskRepo, workEntryRepo, now)
	taskSvc := taskService.NewTaskService(store, taskRepo, employeeRepo, now)
	workEntrySvc := workEntryService.NewWorkEntryService(workEntryRepo, employeeRepo, now)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, now)
	reportSvc := reportService.NewReportService(dashboardRepo, now)

	router := appHTTP.NewRouter(logger, cfg.CORS.AllowedOrigins, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, attendanceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		WorkEntry:  appHTTP.NewWorkEntryHandler(workEntrySvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc, now),
		Stream:     appHTTP.NewStreamHandler(hub),
	})

	scheduler := cron.NewScheduler()
	cron.NewOverdueJobs(taskRepo, publishers, now).RegisterJobs(scheduler)
	scheduler.Start(ctx)

	// Request contexts derive from baseCtx so open event streams end on shutdown
	baseCtx, cancelRequests := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancelRequests)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		logger.Error("Server error", "error", err)
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}

	scheduler.Stop()
	stopRelay()
	if relayDone != nil {
		<-relayDone
	}
	logger.Info("Server stopped")
}
