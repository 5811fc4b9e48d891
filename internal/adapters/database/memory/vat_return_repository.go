package memory

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

type vatReturnRepository struct {
	vatReturns *table[domain.VatReturn]
}

func newVatReturnRepository() *vatReturnRepository {
	return &vatReturnRepository{
		vatReturns: newTable("vat return", func(v domain.VatReturn) string { return v.ID }, cloneVatReturn),
	}
}

var _ portsrepo.VatReturnRepositoryFacade = (*vatReturnRepository)(nil)

func (r *vatReturnRepository) FindVatReturnByID(_ context.Context, vatReturnID string) (*domain.VatReturn, error) {
	return r.vatReturns.get(vatReturnID)
}

func (r *vatReturnRepository) ListVatReturnsByBusiness(_ context.Context, businessID string) ([]domain.VatReturn, error) {
	return r.vatReturns.filter(func(v domain.VatReturn) bool { return v.BusinessID == businessID }), nil
}

func (r *vatReturnRepository) SaveVatReturn(_ context.Context, vatReturn domain.VatReturn) error {
	return r.vatReturns.insert(vatReturn, nil)
}

func (r *vatReturnRepository) UpdateVatReturn(_ context.Context, vatReturnID string, patch domain.VatReturnPatch, now time.Time) (*domain.VatReturn, error) {
	return r.vatReturns.update(vatReturnID, func(v *domain.VatReturn) error {
		if err := v.CheckVersion("vat return", vatReturnID, patch.ExpectedVersion); err != nil {
			return err
		}
		v.Apply(patch)
		v.Touch(now)
		return nil
	})
}
