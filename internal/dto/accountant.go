package dto

import (
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

// AssignAccountantRequest grants an accountant access to the business in the path.
type AssignAccountantRequest struct {
	AccountantID string `json:"accountantId" binding:"required"`
}

type InviteClientRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AcceptInvitationRequest names the caller's business the inviting accountant gains access to.
type AcceptInvitationRequest struct {
	BusinessID string `json:"businessId" binding:"required"`
}

type GrantResponse struct {
	ID           string    `json:"id"`
	AccountantID string    `json:"accountantId"`
	ClientID     string    `json:"clientId"`
	BusinessID   string    `json:"businessId"`
	HasAccess    bool      `json:"hasAccess"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToGrantResponse(g *domain.AccountantClient) GrantResponse {
	return GrantResponse{
		ID:           g.ID,
		AccountantID: g.AccountantID,
		ClientID:     g.ClientID,
		BusinessID:   g.BusinessID,
		HasAccess:    g.HasAccess,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

type InvitationResponse struct {
	ID        string                  `json:"id"`
	Email     string                  `json:"email"`
	Token     string                  `json:"token"`
	Status    domain.InvitationStatus `json:"status"`
	ExpiresAt time.Time               `json:"expiresAt"`
	CreatedAt time.Time               `json:"createdAt"`
}

func ToInvitationResponse(i *domain.ClientInvitation) InvitationResponse {
	return InvitationResponse{
		ID:        i.ID,
		Email:     i.Email,
		Token:     i.Token,
		Status:    i.Status,
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
	}
}
