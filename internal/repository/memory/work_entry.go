package memory

import (
	"context"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
)

type workEntryRepositoryImpl struct {
	store *Store
}

func NewWorkEntryRepository(store *Store) workentry.WorkEntryRepository {
	return &workEntryRepositoryImpl{store: store}
}

// GetByID implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) GetByID(ctx context.Context, id int) (workentry.WorkEntry, error) {
	release := r.store.read(ctx)
	defer release()

	for _, w := range r.store.workEntries {
		if w.ID == id {
			return w.Clone(), nil
		}
	}
	return workentry.WorkEntry{}, workentry.ErrWorkEntryNotFound
}

// List implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) List(ctx context.Context) ([]workentry.WorkEntry, error) {
	release := r.store.read(ctx)
	defer release()

	return cloneWorkEntries(r.store.workEntries), nil
}

// ListByEmployee implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int) ([]workentry.WorkEntry, error) {
	release := r.store.read(ctx)
	defer release()

	var out []workentry.WorkEntry
	for _, w := range r.store.workEntries {
		if w.EmployeeID == employeeID {
			out = append(out, w.Clone())
		}
	}
	return out, nil
}

// Create implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) Create(ctx context.Context, entry workentry.WorkEntry) (workentry.WorkEntry, error) {
	if entry.Status == "" {
		entry.Status = workentry.StatusSubmitted
	}
	entry.Date = clock.DateOf(entry.Date)

	release := r.store.write(ctx)
	maxID := 0
	for _, w := range r.store.workEntries {
		if w.ID > maxID {
			maxID = w.ID
		}
	}
	entry.ID = maxID + 1
	r.store.workEntries = append(r.store.workEntries, entry.Clone())
	release()

	r.store.emit(ctx, event.CollectionWorkEntries, event.ActionCreated, itoa(entry.ID))
	return entry.Clone(), nil
}

// Approve implements workentry.WorkEntryRepository. Only submitted entries
// move to approved.
func (r *workEntryRepositoryImpl) Approve(ctx context.Context, id int) (workentry.WorkEntry, error) {
	release := r.store.write(ctx)
	for i := range r.store.workEntries {
		w := &r.store.workEntries[i]
		if w.ID != id {
			continue
		}
		if w.Status != workentry.StatusSubmitted {
			release()
			return workentry.WorkEntry{}, workentry.ErrInvalidStatusTransition
		}
		w.Status = workentry.StatusApproved
		approved := w.Clone()
		release()

		r.store.emit(ctx, event.CollectionWorkEntries, event.ActionUpdated, itoa(id))
		return approved, nil
	}
	release()
	return workentry.WorkEntry{}, workentry.ErrWorkEntryNotFound
}
