package services

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/dto"
)

// RelationshipResolverSvc answers accountant/client visibility questions.
type RelationshipResolverSvc interface {
	// ClientsOf returns distinct role=client users the accountant holds an active grant for, in first-grant order.
	ClientsOf(ctx context.Context, accountantID string) ([]domain.User, error)
	// AccountantsOf returns distinct role=accountant users with an active grant from the client, in first-grant order.
	AccountantsOf(ctx context.Context, clientID string) ([]domain.User, error)
}

type AccountantSvcFacade interface {
	RelationshipResolverSvc
	BusinessAuthorizerSvc

	// ListMyClients is ClientsOf for a caller that must be an accountant (or admin).
	ListMyClients(ctx context.Context, requestingUserID string) ([]domain.User, error)
	// AssignAccountant grants accountantID access to the business; the caller must own it or be admin.
	AssignAccountant(ctx context.Context, businessID string, req dto.AssignAccountantRequest, requestingUserID string) (*domain.AccountantClient, error)
	// RevokeAccountant disables every grant for the accountant on the business.
	RevokeAccountant(ctx context.Context, businessID, accountantID, requestingUserID string) error
	InviteClient(ctx context.Context, req dto.InviteClientRequest, accountantID string) (*domain.ClientInvitation, error)
	// AcceptInvitation turns a pending, unexpired invitation into a grant on one of the caller's businesses.
	AcceptInvitation(ctx context.Context, token string, req dto.AcceptInvitationRequest, clientID string) (*domain.AccountantClient, error)
}
