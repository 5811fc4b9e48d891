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
	"github.com/google/uuid"
)

type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
	userRepo     portsrepo.UserReader
}

func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade, userRepo portsrepo.UserReader, opts ...ServiceOption) portssvc.BusinessSvcFacade {
	s := &businessService{businessRepo: businessRepo, userRepo: userRepo}
	s.apply(opts)
	return s
}

var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, ownerID string) (*domain.Business, error) {
	business := domain.Business{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		CompanyName:   req.CompanyName,
		CompanyNumber: req.CompanyNumber,
		UTR:           req.UTR,
		VATNumber:     req.VATNumber,
		VATScheme:     req.VATScheme,
		BusinessType:  req.BusinessType,
		Industry:      req.Industry,
		Address:       req.Address,
		City:          req.City,
		Postcode:      req.Postcode,
		IsActive:      true,
		IsPrimary:     req.IsPrimary,
		AuditFields:   domain.NewAuditFields(s.Now()),
	}
	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		s.LogError(ctx, err, "Failed to save business", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Business created", slog.String("business_id", business.ID), slog.String("owner_id", ownerID))
	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      ownerID,
		BusinessID:  business.ID,
		Action:      domain.ActionBusinessCreated,
		Description: fmt.Sprintf("Created business %s", business.CompanyName),
	})
	return &business, nil
}

func (s *businessService) GetBusinessByID(ctx context.Context, businessID, requestingUserID string) (*domain.Business, error) {
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get business", slog.String("business_id", businessID))
		}
		return nil, err
	}
	return business, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, requestingUserID string) ([]domain.Business, error) {
	if s.BusinessAuthorizer == nil {
		return s.businessRepo.ListBusinessesByOwner(ctx, requestingUserID)
	}

	ids, err := s.BusinessAuthorizer.AccessibleBusinessIDs(ctx, requestingUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve accessible businesses", slog.String("user_id", requestingUserID))
		return nil, err
	}
	byID, err := s.businessRepo.FindBusinessesByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load businesses", slog.String("user_id", requestingUserID))
		return nil, err
	}
	businesses := make([]domain.Business, 0, len(ids))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			businesses = append(businesses, b)
		}
	}
	return businesses, nil
}

func (s *businessService) UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest, requestingUserID string) (*domain.Business, error) {
	existing, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != requestingUserID {
		user, err := s.userRepo.FindUserByID(ctx, requestingUserID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if err != nil || user.Role != domain.RoleAdmin {
			return nil, apperrors.NewForbiddenError(fmt.Sprintf("only the owner can update business %s", businessID))
		}
	}

	business, err := s.businessRepo.UpdateBusiness(ctx, businessID, req.ToPatch(), s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update business", slog.String("business_id", businessID))
		}
		return nil, err
	}

	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  businessID,
		Action:      domain.ActionBusinessUpdated,
		Description: fmt.Sprintf("Updated business %s", business.CompanyName),
	})
	return business, nil
}
