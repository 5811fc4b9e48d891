package memory

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

type clientInvitationRepository struct {
	invitations *table[domain.ClientInvitation]
}

func newClientInvitationRepository() *clientInvitationRepository {
	return &clientInvitationRepository{
		invitations: newTable("client invitation", func(i domain.ClientInvitation) string { return i.ID }, cloneValue[domain.ClientInvitation]),
	}
}

var _ portsrepo.ClientInvitationRepositoryFacade = (*clientInvitationRepository)(nil)

func (r *clientInvitationRepository) FindClientInvitationByID(_ context.Context, invitationID string) (*domain.ClientInvitation, error) {
	return r.invitations.get(invitationID)
}

func (r *clientInvitationRepository) FindClientInvitationByToken(_ context.Context, token string) (*domain.ClientInvitation, error) {
	return r.invitations.first("with given token", func(i domain.ClientInvitation) bool { return i.Token == token })
}

func (r *clientInvitationRepository) ListClientInvitationsByAccountant(_ context.Context, accountantID string) ([]domain.ClientInvitation, error) {
	return r.invitations.filter(func(i domain.ClientInvitation) bool { return i.AccountantID == accountantID }), nil
}

func (r *clientInvitationRepository) SaveClientInvitation(_ context.Context, invitation domain.ClientInvitation) error {
	return r.invitations.insert(invitation, func(existing domain.ClientInvitation) bool {
		return existing.Token == invitation.Token
	})
}

func (r *clientInvitationRepository) UpdateClientInvitation(_ context.Context, invitationID string, patch domain.ClientInvitationPatch, now time.Time) (*domain.ClientInvitation, error) {
	return r.invitations.update(invitationID, func(i *domain.ClientInvitation) error {
		if patch.Status != nil {
			i.Status = *patch.Status
		}
		if now.After(i.UpdatedAt) {
			i.UpdatedAt = now
		}
		return nil
	})
}
