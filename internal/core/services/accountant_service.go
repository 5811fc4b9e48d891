package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/google/uuid"
)

// DefaultInvitationTTL is used when the service is built without an explicit TTL.
const DefaultInvitationTTL = 48 * time.Hour

const invitationTokenAttempts = 3

// accountantService resolves accountant/client relationships and owns
// business-level authorization.
type accountantService struct {
	BaseService
	userRepo       portsrepo.UserReader
	businessRepo   portsrepo.BusinessReader
	grantRepo      portsrepo.AccountantClientRepositoryFacade
	invitationRepo portsrepo.ClientInvitationRepositoryFacade
	invitationTTL  time.Duration
}

// NewAccountantService creates the relationship resolver.
func NewAccountantService(
	userRepo portsrepo.UserReader,
	businessRepo portsrepo.BusinessReader,
	grantRepo portsrepo.AccountantClientRepositoryFacade,
	invitationRepo portsrepo.ClientInvitationRepositoryFacade,
	invitationTTL time.Duration,
	opts ...ServiceOption,
) portssvc.AccountantSvcFacade {
	if invitationTTL <= 0 {
		invitationTTL = DefaultInvitationTTL
	}
	s := &accountantService{
		userRepo:       userRepo,
		businessRepo:   businessRepo,
		grantRepo:      grantRepo,
		invitationRepo: invitationRepo,
		invitationTTL:  invitationTTL,
	}
	s.apply(opts)
	return s
}

var _ portssvc.AccountantSvcFacade = (*accountantService)(nil)

func (s *accountantService) ClientsOf(ctx context.Context, accountantID string) ([]domain.User, error) {
	grants, err := s.grantRepo.ListGrantsByAccountant(ctx, accountantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list grants for accountant", slog.String("accountant_id", accountantID))
		return nil, err
	}
	return s.resolveUsers(ctx, grants, func(g domain.AccountantClient) string { return g.ClientID }, domain.RoleClient)
}

func (s *accountantService) AccountantsOf(ctx context.Context, clientID string) ([]domain.User, error) {
	grants, err := s.grantRepo.ListGrantsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list grants for client", slog.String("client_id", clientID))
		return nil, err
	}
	return s.resolveUsers(ctx, grants, func(g domain.AccountantClient) string { return g.AccountantID }, domain.RoleAccountant)
}

// resolveUsers maps active grants to distinct users of the wanted role, keeping first-grant order.
func (s *accountantService) resolveUsers(ctx context.Context, grants []domain.AccountantClient, pick func(domain.AccountantClient) string, role domain.UserRole) ([]domain.User, error) {
	ids := make([]string, 0, len(grants))
	seen := make(map[string]struct{}, len(grants))
	for _, g := range grants {
		if !g.HasAccess {
			continue
		}
		id := pick(g)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	users := make([]domain.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	byID, err := s.userRepo.FindUsersByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load users for grants", slog.Int("count", len(ids)))
		return nil, err
	}
	for _, id := range ids {
		if u, ok := byID[id]; ok && u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *accountantService) CanAccessBusiness(ctx context.Context, userID, businessID string) (bool, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load business for access check", slog.String("business_id", businessID))
		}
		return false, err
	}
	if business.OwnerID == userID {
		return true, nil
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	switch user.Role {
	case domain.RoleAdmin:
		return true, nil
	case domain.RoleAccountant:
		_, err := s.grantRepo.FindGrant(ctx, userID, businessID)
		if err == nil {
			return true, nil
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return false, nil
}

func (s *accountantService) AuthorizeBusinessAccess(ctx context.Context, userID, businessID string) error {
	ok, err := s.CanAccessBusiness(ctx, userID, businessID)
	if err != nil {
		return err
	}
	if !ok {
		s.LogDebug(ctx, "User denied access to business",
			slog.String("user_id", userID),
			slog.String("business_id", businessID))
		return apperrors.NewForbiddenError(fmt.Sprintf("no access to business %s", businessID))
	}
	return nil
}

func (s *accountantService) AccessibleBusinessIDs(ctx context.Context, userID string) ([]string, error) {
	owned, err := s.businessRepo.ListBusinessesByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(owned))
	seen := make(map[string]struct{}, len(owned))
	for _, b := range owned {
		seen[b.ID] = struct{}{}
		ids = append(ids, b.ID)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ids, nil
		}
		return nil, err
	}
	if user.Role != domain.RoleAccountant && user.Role != domain.RoleAdmin {
		return ids, nil
	}

	grants, err := s.grantRepo.ListGrantsByAccountant(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, g := range grants {
		if !g.HasAccess {
			continue
		}
		if _, ok := seen[g.BusinessID]; ok {
			continue
		}
		seen[g.BusinessID] = struct{}{}
		ids = append(ids, g.BusinessID)
	}
	return ids, nil
}

func (s *accountantService) ListMyClients(ctx context.Context, requestingUserID string) ([]domain.User, error) {
	if _, err := s.requireRole(ctx, requestingUserID, domain.RoleAccountant); err != nil {
		return nil, err
	}
	return s.ClientsOf(ctx, requestingUserID)
}

func (s *accountantService) AssignAccountant(ctx context.Context, businessID string, req dto.AssignAccountantRequest, requestingUserID string) (*domain.AccountantClient, error) {
	business, err := s.ownedBusiness(ctx, businessID, requestingUserID)
	if err != nil {
		return nil, err
	}

	accountant, err := s.userRepo.FindUserByID(ctx, req.AccountantID)
	if err != nil {
		return nil, err
	}
	if accountant.Role != domain.RoleAccountant {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("user %s is not an accountant", req.AccountantID))
	}

	now := s.Now()
	grant, err := s.grantRepo.AssignAccountantToClient(ctx, domain.AccountantClient{
		ID:           uuid.NewString(),
		AccountantID: accountant.ID,
		ClientID:     business.OwnerID,
		BusinessID:   business.ID,
		HasAccess:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to assign accountant",
			slog.String("accountant_id", accountant.ID),
			slog.String("business_id", business.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Accountant assigned to business",
		slog.String("accountant_id", accountant.ID),
		slog.String("business_id", business.ID))
	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  business.ID,
		Action:      domain.ActionAccountantAssigned,
		Description: fmt.Sprintf("Granted %s %s access to %s", accountant.FirstName, accountant.LastName, business.CompanyName),
		Metadata:    map[string]any{"accountantId": accountant.ID},
	})
	return grant, nil
}

func (s *accountantService) RevokeAccountant(ctx context.Context, businessID, accountantID, requestingUserID string) error {
	business, err := s.ownedBusiness(ctx, businessID, requestingUserID)
	if err != nil {
		return err
	}

	key := domain.GrantKey{AccountantID: accountantID, ClientID: business.OwnerID, BusinessID: business.ID}
	n, err := s.grantRepo.RevokeAccountantAccess(ctx, key, s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to revoke accountant",
				slog.String("accountant_id", accountantID),
				slog.String("business_id", business.ID))
		}
		return err
	}

	s.LogInfo(ctx, "Accountant access revoked",
		slog.String("accountant_id", accountantID),
		slog.String("business_id", business.ID),
		slog.Int("grants", n))
	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  business.ID,
		Action:      domain.ActionAccountantRevoked,
		Description: fmt.Sprintf("Revoked accountant access to %s", business.CompanyName),
		Metadata:    map[string]any{"accountantId": accountantID},
	})
	return nil
}

func (s *accountantService) InviteClient(ctx context.Context, req dto.InviteClientRequest, accountantID string) (*domain.ClientInvitation, error) {
	if _, err := s.requireRole(ctx, accountantID, domain.RoleAccountant); err != nil {
		return nil, err
	}

	now := s.Now()
	var lastErr error
	for attempt := 0; attempt < invitationTokenAttempts; attempt++ {
		token, err := utils.GenerateSecureRandomString(utils.InvitationTokenBytes)
		if err != nil {
			s.LogError(ctx, err, "Failed to generate invitation token")
			return nil, fmt.Errorf("failed to generate invitation token: %w", err)
		}
		invitation := domain.ClientInvitation{
			ID:           uuid.NewString(),
			AccountantID: accountantID,
			Email:        req.Email,
			Token:        token,
			Status:       domain.InvitationStatusPending,
			ExpiresAt:    now.Add(s.invitationTTL),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		lastErr = s.invitationRepo.SaveClientInvitation(ctx, invitation)
		if lastErr == nil {
			s.LogInfo(ctx, "Client invited", slog.String("invitation_id", invitation.ID), slog.String("accountant_id", accountantID))
			s.RecordActivity(ctx, portssvc.ActivityEntry{
				UserID:      accountantID,
				Action:      domain.ActionClientInvited,
				Description: fmt.Sprintf("Invited %s", req.Email),
				Metadata:    map[string]any{"invitationId": invitation.ID},
			})
			return &invitation, nil
		}
		if !errors.Is(lastErr, apperrors.ErrDuplicate) {
			break
		}
	}
	s.LogError(ctx, lastErr, "Failed to save client invitation", slog.String("accountant_id", accountantID))
	return nil, lastErr
}

func (s *accountantService) AcceptInvitation(ctx context.Context, token string, req dto.AcceptInvitationRequest, clientID string) (*domain.AccountantClient, error) {
	invitation, err := s.invitationRepo.FindClientInvitationByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if invitation.Status != domain.InvitationStatusPending {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invitation is %s", invitation.Status))
	}

	now := s.Now()
	if invitation.IsExpired(now) {
		expired := domain.InvitationStatusExpired
		if _, err := s.invitationRepo.UpdateClientInvitation(ctx, invitation.ID, domain.ClientInvitationPatch{Status: &expired}, now); err != nil {
			s.LogError(ctx, err, "Failed to mark invitation expired", slog.String("invitation_id", invitation.ID))
		}
		return nil, apperrors.NewValidationFailedError("invitation has expired")
	}

	client, err := s.requireRole(ctx, clientID, domain.RoleClient)
	if err != nil {
		return nil, err
	}
	if client.Email != invitation.Email {
		return nil, apperrors.NewForbiddenError("invitation was issued to a different email")
	}
	business, err := s.businessRepo.FindBusinessByID(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if business.OwnerID != client.ID {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("business %s is not owned by the caller", business.ID))
	}

	grant, err := s.grantRepo.AssignAccountantToClient(ctx, domain.AccountantClient{
		ID:           uuid.NewString(),
		AccountantID: invitation.AccountantID,
		ClientID:     client.ID,
		BusinessID:   business.ID,
		HasAccess:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create grant from invitation", slog.String("invitation_id", invitation.ID))
		return nil, err
	}

	accepted := domain.InvitationStatusAccepted
	if _, err := s.invitationRepo.UpdateClientInvitation(ctx, invitation.ID, domain.ClientInvitationPatch{Status: &accepted}, now); err != nil {
		s.LogError(ctx, err, "Failed to mark invitation accepted", slog.String("invitation_id", invitation.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Invitation accepted",
		slog.String("invitation_id", invitation.ID),
		slog.String("business_id", business.ID))
	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      client.ID,
		BusinessID:  business.ID,
		Action:      domain.ActionInvitationAccepted,
		Description: fmt.Sprintf("Accepted invitation for %s", business.CompanyName),
		Metadata:    map[string]any{"accountantId": invitation.AccountantID},
	})
	return grant, nil
}

// requireRole loads the user and checks the role. Admins pass every check.
func (s *accountantService) requireRole(ctx context.Context, userID string, role domain.UserRole) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("unknown user")
		}
		return nil, err
	}
	if user.Role != role && user.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("requires role %s", role))
	}
	return user, nil
}

// ownedBusiness loads the business and checks the caller owns it or is an admin.
func (s *accountantService) ownedBusiness(ctx context.Context, businessID, userID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business.OwnerID == userID {
		return business, nil
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if err == nil && user.Role == domain.RoleAdmin {
		return business, nil
	}
	return nil, apperrors.NewForbiddenError(fmt.Sprintf("only the owner can manage accountants on business %s", businessID))
}
