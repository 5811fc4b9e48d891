package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/google/uuid"
)

// Demo accounts created by SeedDemoData.
const (
	DemoAccountantEmail = "sarah@accountingfirm.co.uk"
	DemoClientEmail     = "john.smith@example.co.uk"
	DemoPassword        = "password123"
)

func strPtr(s string) *string { return &s }

// SeedDemoData creates one accountant, one client with two businesses, and a grant
// on the primary business. It does nothing when the demo accountant already exists.
func SeedDemoData(ctx context.Context, repos portsrepo.RepositoryProvider, now time.Time, logger *slog.Logger) error {
	if _, err := repos.UserRepo.FindUserByEmail(ctx, DemoAccountantEmail); err == nil {
		logger.Info("Demo data already present, skipping seed")
		return nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for demo data: %w", err)
	}

	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	accountant := domain.User{
		ID:           uuid.NewString(),
		Email:        DemoAccountantEmail,
		PasswordHash: hash,
		FirstName:    "Sarah",
		LastName:     "Johnson",
		Phone:        strPtr("0207 123 4567"),
		Role:         domain.RoleAccountant,
		Address:      strPtr("123 Accounting Street"),
		City:         strPtr("London"),
		Postcode:     strPtr("EC1A 1BB"),
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(now),
	}
	client := domain.User{
		ID:           uuid.NewString(),
		Email:        DemoClientEmail,
		PasswordHash: hash,
		FirstName:    "John",
		LastName:     "Smith",
		Phone:        strPtr("07123 456789"),
		Role:         domain.RoleClient,
		Address:      strPtr("456 Business Avenue"),
		City:         strPtr("London"),
		Postcode:     strPtr("SW1A 1AA"),
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(now),
	}
	for _, u := range []domain.User{accountant, client} {
		if err := repos.UserRepo.SaveUser(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
	}

	standard := domain.VATSchemeStandard
	notRegistered := domain.VATSchemeNotRegistered
	consulting := domain.Business{
		ID:            uuid.NewString(),
		OwnerID:       client.ID,
		CompanyName:   "Smith Consulting Ltd",
		CompanyNumber: strPtr("12345678"),
		UTR:           strPtr("1234567890"),
		VATNumber:     strPtr("GB123456789"),
		VATScheme:     &standard,
		BusinessType:  domain.BusinessTypeLimitedCompany,
		Industry:      strPtr("Consulting"),
		Address:       strPtr("456 Business Avenue"),
		City:          strPtr("London"),
		Postcode:      strPtr("SW1A 1AA"),
		IsActive:      true,
		IsPrimary:     true,
		AuditFields:   domain.NewAuditFields(now),
	}
	property := domain.Business{
		ID:            uuid.NewString(),
		OwnerID:       client.ID,
		CompanyName:   "Smith Property Holdings",
		CompanyNumber: strPtr("87654321"),
		UTR:           strPtr("0987654321"),
		VATScheme:     &notRegistered,
		BusinessType:  domain.BusinessTypeLimitedCompany,
		Industry:      strPtr("Property"),
		Address:       strPtr("456 Business Avenue"),
		City:          strPtr("London"),
		Postcode:      strPtr("SW1A 1AA"),
		IsActive:      true,
		AuditFields:   domain.NewAuditFields(now),
	}
	for _, b := range []domain.Business{consulting, property} {
		if err := repos.BusinessRepo.SaveBusiness(ctx, b); err != nil {
			return fmt.Errorf("failed to seed business %s: %w", b.CompanyName, err)
		}
	}

	if _, err := repos.AccountantClientRepo.AssignAccountantToClient(ctx, domain.AccountantClient{
		ID:           uuid.NewString(),
		AccountantID: accountant.ID,
		ClientID:     client.ID,
		BusinessID:   consulting.ID,
		HasAccess:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return fmt.Errorf("failed to seed accountant grant: %w", err)
	}

	logger.Info("Demo data seeded",
		slog.String("accountant_email", DemoAccountantEmail),
		slog.String("client_email", DemoClientEmail))
	return nil
}
