package memory

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

type activityLogRepository struct {
	logs *table[domain.ActivityLog]
}

func newActivityLogRepository() *activityLogRepository {
	return &activityLogRepository{
		logs: newTable("activity log", func(a domain.ActivityLog) string { return a.ID }, cloneActivityLog),
	}
}

var _ portsrepo.ActivityLogRepositoryFacade = (*activityLogRepository)(nil)

func (r *activityLogRepository) SaveActivityLog(_ context.Context, entry domain.ActivityLog) error {
	return r.logs.insert(entry, nil)
}

func (r *activityLogRepository) ListActivityLogsByUser(_ context.Context, userID string) ([]domain.ActivityLog, error) {
	return r.logs.filter(func(a domain.ActivityLog) bool { return a.UserID == userID }), nil
}

func (r *activityLogRepository) ListActivityLogsByBusiness(_ context.Context, businessID string) ([]domain.ActivityLog, error) {
	return r.logs.filter(func(a domain.ActivityLog) bool {
		return a.BusinessID != nil && *a.BusinessID == businessID
	}), nil
}
