package memory

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

type businessRepository struct {
	businesses *table[domain.Business]
}

func newBusinessRepository() *businessRepository {
	return &businessRepository{
		businesses: newTable("business", func(b domain.Business) string { return b.ID }, cloneBusiness),
	}
}

var _ portsrepo.BusinessRepositoryFacade = (*businessRepository)(nil)

func (r *businessRepository) FindBusinessByID(_ context.Context, businessID string) (*domain.Business, error) {
	return r.businesses.get(businessID)
}

func (r *businessRepository) ListBusinessesByOwner(_ context.Context, ownerID string) ([]domain.Business, error) {
	return r.businesses.filter(func(b domain.Business) bool { return b.OwnerID == ownerID }), nil
}

func (r *businessRepository) FindBusinessesByIDs(_ context.Context, businessIDs []string) (map[string]domain.Business, error) {
	return r.businesses.pick(businessIDs), nil
}

func (r *businessRepository) SaveBusiness(_ context.Context, business domain.Business) error {
	return r.businesses.insert(business, nil)
}

func (r *businessRepository) UpdateBusiness(_ context.Context, businessID string, patch domain.BusinessPatch, now time.Time) (*domain.Business, error) {
	return r.businesses.update(businessID, func(b *domain.Business) error {
		if err := b.CheckVersion("business", businessID, patch.ExpectedVersion); err != nil {
			return err
		}
		b.Apply(patch)
		b.Touch(now)
		return nil
	})
}
