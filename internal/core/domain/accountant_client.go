package domain

import "time"

// AccountantClient is an access grant from a client to an accountant for one business.
// (AccountantID, ClientID, BusinessID) is unique; revocation flips HasAccess rather than deleting.
type AccountantClient struct {
	ID           string    `json:"id"`
	AccountantID string    `json:"accountantId"`
	ClientID     string    `json:"clientId"`
	BusinessID   string    `json:"businessId"`
	HasAccess    bool      `json:"hasAccess"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GrantKey identifies a grant by its composite key.
type GrantKey struct {
	AccountantID string
	ClientID     string
	BusinessID   string
}
