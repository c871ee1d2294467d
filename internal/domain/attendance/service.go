package attendance

import (
	"context"
)

type AttendanceService interface {
	// AddAttendance appends a new entry; a missing id is generated
	AddAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// UpdateAttendance replaces the entry with the given id
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// RecordAttendance upserts the single entry of an employee for a date
	RecordAttendance(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance lists entries filtered by date and/or employee
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	// GetDailySummary counts present/late/absent entries for a date (default today)
	GetDailySummary(ctx context.Context, date string) (DailySummaryResponse, error)

	// GetAttendanceRate computes the live attendance rate of an employee
	GetAttendanceRate(ctx context.Context, employeeID int) (AttendanceRateResponse, error)
}
