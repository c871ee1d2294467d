package event

import (
	"time"
)

type Collection string

const (
	CollectionEmployees   Collection = "employees"
	CollectionAttendance  Collection = "attendance"
	CollectionTasks       Collection = "tasks"
	CollectionWorkEntries Collection = "work_entries"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	// ActionOverdue is raised when a task crosses its due date. The record
	// itself is unchanged; overdue is derived.
	ActionOverdue Action = "overdue"
)

// Change describes one applied store mutation.
type Change struct {
	Collection Collection `json:"collection"`
	Action     Action     `json:"action"`
	ID         string     `json:"id"`
	At         time.Time  `json:"at"`
}

// Name is the event name used on the wire, e.g. "tasks.updated".
func (c Change) Name() string {
	return string(c.Collection) + "." + string(c.Action)
}

// Publisher receives store changes after they are applied.
// Publish must not block.
type Publisher interface {
	Publish(change Change)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(change Change)

func (f PublisherFunc) Publish(change Change) { f(change) }

// Publishers forwards each change to every publisher in order.
type Publishers []Publisher

func (ps Publishers) Publish(change Change) {
	for _, p := range ps {
		p.Publish(change)
	}
}
