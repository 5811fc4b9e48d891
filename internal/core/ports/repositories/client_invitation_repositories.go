package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

type ClientInvitationReader interface {
	FindClientInvitationByID(ctx context.Context, invitationID string) (*domain.ClientInvitation, error)
	FindClientInvitationByToken(ctx context.Context, token string) (*domain.ClientInvitation, error)
	ListClientInvitationsByAccountant(ctx context.Context, accountantID string) ([]domain.ClientInvitation, error)
}

type ClientInvitationWriter interface {
	// SaveClientInvitation persists a new invitation. A duplicate token yields apperrors.ErrDuplicate.
	SaveClientInvitation(ctx context.Context, invitation domain.ClientInvitation) error
	UpdateClientInvitation(ctx context.Context, invitationID string, patch domain.ClientInvitationPatch, now time.Time) (*domain.ClientInvitation, error)
}

type ClientInvitationRepositoryFacade interface {
	ClientInvitationReader
	ClientInvitationWriter
}
