package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	BusinessAuthorizer portssvc.BusinessAuthorizerSvc
	Activity           portssvc.ActivityRecorderSvc
	Clock              func() time.Time
}

// ServiceOption configures the shared BaseService of a service.
type ServiceOption func(*BaseService)

// WithBusinessAuthorizer sets the authorizer used by business-scoped operations.
func WithBusinessAuthorizer(a portssvc.BusinessAuthorizerSvc) ServiceOption {
	return func(b *BaseService) { b.BusinessAuthorizer = a }
}

// WithActivityRecorder sets where audit events are appended.
func WithActivityRecorder(r portssvc.ActivityRecorderSvc) ServiceOption {
	return func(b *BaseService) { b.Activity = r }
}

// WithClock overrides time.Now, mainly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(b *BaseService) { b.Clock = clock }
}

func (s *BaseService) apply(opts []ServiceOption) {
	for _, opt := range opts {
		opt(s)
	}
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeBusiness checks that userID may act on businessID.
func (s *BaseService) AuthorizeBusiness(ctx context.Context, userID, businessID string) error {
	if s.BusinessAuthorizer != nil {
		return s.BusinessAuthorizer.AuthorizeBusinessAccess(ctx, userID, businessID)
	}
	s.LogDebug(ctx, "No business authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("business_id", businessID))
	return nil
}

// RecordActivity appends an audit event when a recorder is configured.
func (s *BaseService) RecordActivity(ctx context.Context, entry portssvc.ActivityEntry) {
	if s.Activity == nil {
		return
	}
	s.Activity.Record(ctx, entry)
}
