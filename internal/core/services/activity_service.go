package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityLogRepositoryFacade
}

// NewActivityService creates the audit log service.
func NewActivityService(activityRepo portsrepo.ActivityLogRepositoryFacade, opts ...ServiceOption) portssvc.ActivitySvcFacade {
	s := &activityService{activityRepo: activityRepo}
	s.apply(opts)
	return s
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

func (s *activityService) Record(ctx context.Context, entry portssvc.ActivityEntry) {
	log := domain.ActivityLog{
		ID:          uuid.NewString(),
		UserID:      entry.UserID,
		Action:      entry.Action,
		Description: entry.Description,
		CreatedAt:   s.Now(),
	}
	if entry.BusinessID != "" {
		businessID := entry.BusinessID
		log.BusinessID = &businessID
	}
	if len(entry.Metadata) > 0 {
		raw, err := json.Marshal(entry.Metadata)
		if err != nil {
			s.LogError(ctx, err, "Failed to encode activity metadata", slog.String("action", entry.Action))
		} else {
			log.Metadata = raw
		}
	}

	if err := s.activityRepo.SaveActivityLog(ctx, log); err != nil {
		s.LogError(ctx, err, "Failed to record activity",
			slog.String("action", entry.Action),
			slog.String("user_id", entry.UserID))
	}
}

func (s *activityService) ListActivityLogs(ctx context.Context, requestingUserID, businessID string) ([]domain.ActivityLog, error) {
	if businessID == "" {
		logs, err := s.activityRepo.ListActivityLogsByUser(ctx, requestingUserID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list activity logs for user", slog.String("user_id", requestingUserID))
			return nil, err
		}
		return logs, nil
	}

	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}
	logs, err := s.activityRepo.ListActivityLogsByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activity logs for business", slog.String("business_id", businessID))
		return nil, err
	}
	return logs, nil
}
