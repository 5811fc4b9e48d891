package services

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/dto"
)

type BusinessReaderSvc interface {
	GetBusinessByID(ctx context.Context, businessID, requestingUserID string) (*domain.Business, error)
	// ListBusinesses returns owned businesses for clients, granted ones for accountants and owned plus granted for admins.
	ListBusinesses(ctx context.Context, requestingUserID string) ([]domain.Business, error)
}

type BusinessWriterSvc interface {
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, ownerID string) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest, requestingUserID string) (*domain.Business, error)
}

type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
}

// BusinessAuthorizerSvc answers "may this user act on this business".
type BusinessAuthorizerSvc interface {
	// CanAccessBusiness is true for the owner, an admin, or an accountant with an active grant.
	CanAccessBusiness(ctx context.Context, userID, businessID string) (bool, error)
	// AuthorizeBusinessAccess returns nil, apperrors.ErrForbidden or apperrors.ErrNotFound.
	AuthorizeBusinessAccess(ctx context.Context, userID, businessID string) error
	// AccessibleBusinessIDs lists every business the user may see, in a stable order.
	AccessibleBusinessIDs(ctx context.Context, userID string) ([]string, error)
}
