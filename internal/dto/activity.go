package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

// ListActivityLogsParams: with businessId the business's log is returned, otherwise the caller's own.
type ListActivityLogsParams struct {
	BusinessID string `form:"businessId"`
}

type ActivityLogResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	BusinessID  *string         `json:"businessId,omitempty"`
	Action      string          `json:"action"`
	Description string          `json:"description"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func ToActivityLogResponses(logs []domain.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, len(logs))
	for i, l := range logs {
		out[i] = ActivityLogResponse{
			ID:          l.ID,
			UserID:      l.UserID,
			BusinessID:  l.BusinessID,
			Action:      l.Action,
			Description: l.Description,
			Metadata:    l.Metadata,
			CreatedAt:   l.CreatedAt,
		}
	}
	return out
}
