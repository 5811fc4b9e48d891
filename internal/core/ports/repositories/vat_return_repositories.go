package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

type VatReturnReader interface {
	FindVatReturnByID(ctx context.Context, vatReturnID string) (*domain.VatReturn, error)
	ListVatReturnsByBusiness(ctx context.Context, businessID string) ([]domain.VatReturn, error)
}

type VatReturnWriter interface {
	SaveVatReturn(ctx context.Context, vatReturn domain.VatReturn) error
	UpdateVatReturn(ctx context.Context, vatReturnID string, patch domain.VatReturnPatch, now time.Time) (*domain.VatReturn, error)
}

type VatReturnRepositoryFacade interface {
	VatReturnReader
	VatReturnWriter
}
