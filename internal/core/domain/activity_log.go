package domain

import (
	"encoding/json"
	"time"
)

// Well-known activity actions.
const (
	ActionLogin              = "login"
	ActionRegister           = "register"
	ActionProfileUpdated     = "profile_updated"
	ActionBusinessCreated    = "business_created"
	ActionBusinessUpdated    = "business_updated"
	ActionDocumentUploaded   = "document_uploaded"
	ActionDocumentUpdated    = "document_updated"
	ActionTransactionCreated = "transaction_created"
	ActionTransactionUpdated = "transaction_updated"
	ActionInvoiceCreated     = "invoice_created"
	ActionInvoiceUpdated     = "invoice_updated"
	ActionVatReturnCreated   = "vat_return_created"
	ActionVatReturnUpdated   = "vat_return_updated"
	ActionAccountantAssigned = "accountant_assigned"
	ActionAccountantRevoked  = "accountant_revoked"
	ActionClientInvited      = "client_invited"
	ActionInvitationAccepted = "invitation_accepted"
)

// ActivityLog is an append-only audit record.
type ActivityLog struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	BusinessID  *string         `json:"businessId,omitempty"`
	Action      string          `json:"action"`
	Description string          `json:"description"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
