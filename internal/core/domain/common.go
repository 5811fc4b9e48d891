package domain

import (
	"time"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
)

// AuditFields holds standard audit information for mutable domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int       `json:"version"` // optimistic concurrency token, starts at 1
}

// NewAuditFields stamps a freshly created entity.
func NewAuditFields(now time.Time) AuditFields {
	return AuditFields{CreatedAt: now, UpdatedAt: now, Version: 1}
}

// Touch records a modification. UpdatedAt never moves backwards.
func (a *AuditFields) Touch(now time.Time) {
	if now.Before(a.UpdatedAt) {
		now = a.UpdatedAt
	}
	a.UpdatedAt = now
	a.Version++
}

// CheckVersion returns a conflict error when expected is set and differs from the stored version.
func (a AuditFields) CheckVersion(entity, id string, expected *int) error {
	if expected != nil && *expected != a.Version {
		return apperrors.NewConflictError(entity, id, *expected, a.Version)
	}
	return nil
}

// set copies *v into *dst when v is provided.
func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// setOpt replaces an optional field with a copy of *v when v is provided.
func setOpt[T any](dst **T, v *T) {
	if v != nil {
		c := *v
		*dst = &c
	}
}
