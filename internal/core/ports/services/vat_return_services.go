package services

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/dto"
)

type VatReturnReaderSvc interface {
	GetVatReturnByID(ctx context.Context, vatReturnID, requestingUserID string) (*domain.VatReturn, error)
	ListVatReturnsByBusiness(ctx context.Context, businessID, requestingUserID string) ([]domain.VatReturn, error)
}

type VatReturnWriterSvc interface {
	CreateVatReturn(ctx context.Context, businessID string, req dto.CreateVatReturnRequest, requestingUserID string) (*domain.VatReturn, error)
	UpdateVatReturn(ctx context.Context, vatReturnID string, req dto.UpdateVatReturnRequest, requestingUserID string) (*domain.VatReturn, error)
}

type VatReturnSvcFacade interface {
	VatReturnReaderSvc
	VatReturnWriterSvc
}
