package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

// AccountantClientReader exposes grant lookups.
type AccountantClientReader interface {
	// ListGrantsByAccountant returns the accountant's grants in the order they were first created.
	ListGrantsByAccountant(ctx context.Context, accountantID string) ([]domain.AccountantClient, error)
	// ListGrantsByClient returns the client's grants in the order they were first created.
	ListGrantsByClient(ctx context.Context, clientID string) ([]domain.AccountantClient, error)
	// ListGrantsByBusiness returns every grant (active or revoked) on a business.
	ListGrantsByBusiness(ctx context.Context, businessID string) ([]domain.AccountantClient, error)
	// FindGrant returns the active grant for the accountant on the business, or apperrors.ErrNotFound.
	FindGrant(ctx context.Context, accountantID, businessID string) (*domain.AccountantClient, error)
}

// AccountantClientWriter mutates grants. Grants are never deleted.
type AccountantClientWriter interface {
	// AssignAccountantToClient inserts the grant, or re-enables an existing one for the same triple.
	AssignAccountantToClient(ctx context.Context, grant domain.AccountantClient) (*domain.AccountantClient, error)
	// RevokeAccountantAccess disables every grant matching the triple and returns how many were changed.
	RevokeAccountantAccess(ctx context.Context, key domain.GrantKey, now time.Time) (int, error)
}

type AccountantClientRepositoryFacade interface {
	AccountantClientReader
	AccountantClientWriter
}
