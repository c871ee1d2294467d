package task

import (
	"time"
)

type Task struct {
	ID             int
	Title          string
	Description    string
	AssignedTo     int
	AssignedBy     string
	Priority       Priority
	Status         Status
	DueDate        time.Time
	CreatedDate    time.Time
	CompletedDate  *time.Time
	CompletionType *CompletionType
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Status string

const (
	StatusPending         Status = "pending"
	StatusInProgress      Status = "in-progress"
	StatusCompletedOnTime Status = "completed-on-time"
	StatusCompletedLate   Status = "completed-late"
	// StatusOverdue is only ever derived for display, never stored.
	StatusOverdue Status = "overdue"
)

type CompletionType string

const (
	CompletionOnTime CompletionType = "on-time"
	CompletionLate   CompletionType = "late"
)

// DefaultAssignedBy is recorded when a task is created without an assigner.
const DefaultAssignedBy = "Finance Manager"

// IsCompleted reports whether s is one of the completed variants.
func (s Status) IsCompleted() bool {
	return s == StatusCompletedOnTime || s == StatusCompletedLate
}

// CanComplete reports whether a task in status s may be completed.
func (s Status) CanComplete() bool {
	return s == StatusPending || s == StatusInProgress
}

// Status returns the completed status matching the completion kind.
func (c CompletionType) Status() Status {
	if c == CompletionLate {
		return StatusCompletedLate
	}
	return StatusCompletedOnTime
}
