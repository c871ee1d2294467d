package memory

import (
	"context"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/dashboard"
)

type dashboardRepositoryImpl struct {
	store *Store
}

func NewDashboardRepository(store *Store) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{store: store}
}

// Snapshot implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) Snapshot(ctx context.Context) (dashboard.Snapshot, error) {
	release := r.store.read(ctx)
	defer release()

	return r.store.snapshotLocked(), nil
}
