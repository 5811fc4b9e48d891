package domain

import "time"

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"
)

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusExpired:
		return true
	}
	return false
}

// ClientInvitation is an accountant's invitation for a prospective client to grant access.
type ClientInvitation struct {
	ID           string           `json:"id"`
	AccountantID string           `json:"accountantId"`
	Email        string           `json:"email"`
	Token        string           `json:"token"`
	Status       InvitationStatus `json:"status"`
	ExpiresAt    time.Time        `json:"expiresAt"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// IsExpired reports whether the invitation can no longer be accepted at now.
func (i ClientInvitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

type ClientInvitationPatch struct {
	Status *InvitationStatus
}
