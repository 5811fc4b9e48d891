package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

type BusinessReader interface {
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
	// ListBusinessesByOwner returns the owner's businesses in creation order.
	ListBusinessesByOwner(ctx context.Context, ownerID string) ([]domain.Business, error)
	FindBusinessesByIDs(ctx context.Context, businessIDs []string) (map[string]domain.Business, error)
}

type BusinessWriter interface {
	SaveBusiness(ctx context.Context, business domain.Business) error
	UpdateBusiness(ctx context.Context, businessID string, patch domain.BusinessPatch, now time.Time) (*domain.Business, error)
}

type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}
