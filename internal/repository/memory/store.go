// Package memory is the session store: it owns the employee, attendance,
// task and work-entry collections for the lifetime of the process and is the
// single source of truth every view reads from. Nothing is persisted.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
)

// Store serializes all mutations behind one RWMutex. Reads hand out copies,
// so callers can never change store state except through a repository.
type Store struct {
	mu          sync.RWMutex
	employees   []employee.Employee
	attendance  []attendance.Entry
	tasks       []task.Task
	workEntries []workentry.WorkEntry

	publisher event.Publisher
	now       clock.Clock
}

// NewStore creates an empty store. publisher may be nil.
func NewStore(publisher event.Publisher, now clock.Clock) *Store {
	if now == nil {
		now = clock.System()
	}
	return &Store{publisher: publisher, now: now}
}

// Seed replaces every collection with the given fixture content. Employee
// records are normalized; no change events are published.
func (s *Store) Seed(seed dashboard.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = make([]employee.Employee, 0, len(seed.Employees))
	for _, e := range seed.Employees {
		s.employees = append(s.employees, e.Normalize())
	}
	s.attendance = cloneAttendance(seed.Attendance)
	s.tasks = cloneTasks(seed.Tasks)
	s.workEntries = cloneWorkEntries(seed.WorkEntries)
}

// snapshotLocked copies all collections. Callers hold at least a read lock.
func (s *Store) snapshotLocked() dashboard.Snapshot {
	return dashboard.Snapshot{
		Employees:   append([]employee.Employee(nil), s.employees...),
		Attendance:  cloneAttendance(s.attendance),
		Tasks:       cloneTasks(s.tasks),
		WorkEntries: cloneWorkEntries(s.workEntries),
	}
}

func (s *Store) restoreLocked(snap dashboard.Snapshot) {
	s.employees = snap.Employees
	s.attendance = snap.Attendance
	s.tasks = snap.Tasks
	s.workEntries = snap.WorkEntries
}

type txKey struct{}

type txState struct {
	store   *Store
	pending []event.Change
}

func (s *Store) txFrom(ctx context.Context) *txState {
	if tx, ok := ctx.Value(txKey{}).(*txState); ok && tx.store == s {
		return tx
	}
	return nil
}

// WithTransaction runs fn holding the store's write lock. Repository calls
// made with the ctx passed to fn join the transaction. If fn returns an
// error or panics, every collection is restored to its state before fn ran.
// Change events are published only after a successful commit.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txFrom(ctx) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	backup := s.snapshotLocked()
	tx := &txState{store: s}

	committed := false
	defer func() {
		if !committed {
			s.restoreLocked(backup)
			s.mu.Unlock()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	committed = true
	s.mu.Unlock()
	for _, change := range tx.pending {
		s.dispatch(change)
	}
	return nil
}

// write takes the write lock unless ctx belongs to a transaction on s.
func (s *Store) write(ctx context.Context) func() {
	if s.txFrom(ctx) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// read takes the read lock unless ctx belongs to a transaction on s.
func (s *Store) read(ctx context.Context) func() {
	if s.txFrom(ctx) != nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// emit publishes a change, or queues it until commit inside a transaction.
// Call it after releasing the lock.
func (s *Store) emit(ctx context.Context, collection event.Collection, action event.Action, id string) {
	change := event.Change{
		Collection: collection,
		Action:     action,
		ID:         id,
		At:         s.now(),
	}
	if tx := s.txFrom(ctx); tx != nil {
		tx.pending = append(tx.pending, change)
		return
	}
	s.dispatch(change)
}

func (s *Store) dispatch(change event.Change) {
	if s.publisher != nil {
		s.publisher.Publish(change)
	}
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func cloneAttendance(in []attendance.Entry) []attendance.Entry {
	out := make([]attendance.Entry, len(in))
	for i, e := range in {
		if e.Notes != nil {
			notes := *e.Notes
			e.Notes = &notes
		}
		out[i] = e
	}
	return out
}

func cloneTask(t task.Task) task.Task {
	if t.CompletedDate != nil {
		d := *t.CompletedDate
		t.CompletedDate = &d
	}
	if t.CompletionType != nil {
		c := *t.CompletionType
		t.CompletionType = &c
	}
	return t
}

func cloneTasks(in []task.Task) []task.Task {
	out := make([]task.Task, len(in))
	for i, t := range in {
		out[i] = cloneTask(t)
	}
	return out
}

func cloneWorkEntries(in []workentry.WorkEntry) []workentry.WorkEntry {
	out := make([]workentry.WorkEntry, len(in))
	for i, w := range in {
		out[i] = w.Clone()
	}
	return out
}
