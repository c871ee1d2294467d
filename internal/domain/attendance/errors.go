package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceIDExists = errors.New("attendance record id already exists")
	ErrMissingID          = errors.New("attendance record id is required")
	ErrEmployeeNotFound   = errors.New("employee for attendance record not found")
)
