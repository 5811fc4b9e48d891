package repositories

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

// ActivityLogRepositoryFacade is append-only: there is no update or delete.
type ActivityLogRepositoryFacade interface {
	SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error
	ListActivityLogsByUser(ctx context.Context, userID string) ([]domain.ActivityLog, error)
	ListActivityLogsByBusiness(ctx context.Context, businessID string) ([]domain.ActivityLog, error)
}
