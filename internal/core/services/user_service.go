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
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/google/uuid"
)

const invalidCredentials = "invalid email or password"

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, opts ...ServiceOption) portssvc.UserSvcFacade {
	s := &userService{userRepo: userRepo}
	s.apply(opts)
	return s
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	role := domain.RoleClient
	if req.Role != nil {
		role = *req.Role
	}
	if role != domain.RoleClient && role != domain.RoleAccountant {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("role %q cannot be self-registered", role))
	}

	_, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.NewDuplicateError("email already registered")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing email")
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(s.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.ID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.ID), slog.String("role", string(role)))
	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      user.ID,
		Action:      domain.ActionRegister,
		Description: "Account created",
	})
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(invalidCredentials)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.ID))
		return nil, apperrors.NewUnauthorizedError(invalidCredentials)
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("account is disabled")
	}

	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      user.ID,
		Action:      domain.ActionLogin,
		Description: "Signed in",
	})
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	patch := domain.UserPatch{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		Postcode:        req.Postcode,
		ExpectedVersion: req.Version,
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			if errors.Is(err, utils.ErrPasswordTooLong) {
				return nil, apperrors.NewValidationFailedError(err.Error())
			}
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	user, err := s.userRepo.UpdateUser(ctx, userID, patch, s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		}
		return nil, err
	}

	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      userID,
		Action:      domain.ActionProfileUpdated,
		Description: "Profile updated",
	})
	return user, nil
}
