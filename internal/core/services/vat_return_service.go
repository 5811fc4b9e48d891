package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type vatReturnService struct {
	BaseService
	vatReturnRepo portsrepo.VatReturnRepositoryFacade
}

func NewVatReturnService(vatReturnRepo portsrepo.VatReturnRepositoryFacade, opts ...ServiceOption) portssvc.VatReturnSvcFacade {
	s := &vatReturnService{vatReturnRepo: vatReturnRepo}
	s.apply(opts)
	return s
}

var _ portssvc.VatReturnSvcFacade = (*vatReturnService)(nil)

func (s *vatReturnService) CreateVatReturn(ctx context.Context, businessID string, req dto.CreateVatReturnRequest, requestingUserID string) (*domain.VatReturn, error) {
	if req.PeriodStart == nil || req.PeriodEnd == nil || req.DueDate == nil {
		return nil, apperrors.NewValidationFailedError("periodStart, periodEnd and dueDate are required")
	}
	if req.PeriodEnd.Before(req.PeriodStart.Time) {
		return nil, apperrors.NewValidationFailedError("periodEnd must not be before periodStart")
	}
	if req.VATDue == nil || req.VATDue.IsNegative() || domain.IsNegativeMoney(req.VATReclaimed) {
		return nil, apperrors.NewValidationFailedError("VAT amounts must be non-negative")
	}
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}

	status := domain.VatReturnStatusDraft
	if req.Status != nil {
		if !req.Status.IsPending() {
			return nil, apperrors.NewValidationFailedError("a new VAT return must be draft or pending_approval")
		}
		status = *req.Status
	}
	vatDue := domain.RoundMoney(*req.VATDue)
	reclaimed := domain.RoundMoneyPtr(req.VATReclaimed)
	net := domain.RoundMoneyPtr(req.NetVATDue)
	if net == nil {
		n := accounting.NetVATDue(vatDue, reclaimed)
		net = &n
	}

	vr := domain.VatReturn{
		ID:             uuid.NewString(),
		BusinessID:     businessID,
		PeriodStart:    req.PeriodStart.Time,
		PeriodEnd:      req.PeriodEnd.Time,
		VATDue:         vatDue,
		VATReclaimed:   reclaimed,
		NetVATDue:      net,
		TotalSales:     domain.RoundMoneyPtr(req.TotalSales),
		TotalPurchases: domain.RoundMoneyPtr(req.TotalPurchases),
		Status:         status,
		DueDate:        req.DueDate.Time,
		CreatedBy:      requestingUserID,
		AuditFields:    domain.NewAuditFields(s.Now()),
	}
	if err := s.vatReturnRepo.SaveVatReturn(ctx, vr); err != nil {
		s.LogError(ctx, err, "Failed to save VAT return", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "VAT return created", slog.String("vat_return_id", vr.ID), slog.String("business_id", businessID))
	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  businessID,
		Action:      domain.ActionVatReturnCreated,
		Description: fmt.Sprintf("Created VAT return for %s to %s", vr.PeriodStart.Format("2006-01-02"), vr.PeriodEnd.Format("2006-01-02")),
		Metadata:    map[string]any{"vatReturnId": vr.ID},
	})
	return &vr, nil
}

func (s *vatReturnService) GetVatReturnByID(ctx context.Context, vatReturnID, requestingUserID string) (*domain.VatReturn, error) {
	vr, err := s.vatReturnRepo.FindVatReturnByID(ctx, vatReturnID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get VAT return", slog.String("vat_return_id", vatReturnID))
		}
		return nil, err
	}
	if err := s.AuthorizeBusiness(ctx, requestingUserID, vr.BusinessID); err != nil {
		return nil, err
	}
	return vr, nil
}

func (s *vatReturnService) ListVatReturnsByBusiness(ctx context.Context, businessID, requestingUserID string) ([]domain.VatReturn, error) {
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}
	returns, err := s.vatReturnRepo.ListVatReturnsByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list VAT returns", slog.String("business_id", businessID))
		return nil, err
	}
	return returns, nil
}

func (s *vatReturnService) UpdateVatReturn(ctx context.Context, vatReturnID string, req dto.UpdateVatReturnRequest, requestingUserID string) (*domain.VatReturn, error) {
	if domain.IsNegativeMoney(req.VATDue) || domain.IsNegativeMoney(req.VATReclaimed) {
		return nil, apperrors.NewValidationFailedError("VAT amounts must be non-negative")
	}
	existing, err := s.GetVatReturnByID(ctx, vatReturnID, requestingUserID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	patch := req.ToPatch()
	if req.Status != nil && *req.Status != existing.Status {
		switch *req.Status {
		case domain.VatReturnStatusApproved:
			approver := requestingUserID
			patch.ApprovedBy = &approver
			patch.ApprovedAt = &now
		case domain.VatReturnStatusSubmitted:
			patch.SubmittedAt = &now
		}
	}

	vr, err := s.vatReturnRepo.UpdateVatReturn(ctx, vatReturnID, patch, now)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update VAT return", slog.String("vat_return_id", vatReturnID))
		}
		return nil, err
	}

	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  existing.BusinessID,
		Action:      domain.ActionVatReturnUpdated,
		Description: fmt.Sprintf("VAT return is now %s", vr.Status),
		Metadata:    map[string]any{"vatReturnId": vr.ID, "status": string(vr.Status)},
	})
	return vr, nil
}
