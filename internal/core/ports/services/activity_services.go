package services

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

// ActivityEntry describes one audit event to record.
type ActivityEntry struct {
	UserID      string
	BusinessID  string // empty when the action is not business-scoped
	Action      string
	Description string
	Metadata    map[string]any
}

// ActivityRecorderSvc appends audit events. Recording is best effort and never fails the caller.
type ActivityRecorderSvc interface {
	Record(ctx context.Context, entry ActivityEntry)
}

type ActivitySvcFacade interface {
	ActivityRecorderSvc
	// ListActivityLogs returns the business's log when businessID is set (after an access check), else the caller's own.
	ListActivityLogs(ctx context.Context, requestingUserID, businessID string) ([]domain.ActivityLog, error)
}
