package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/adapters/database/memory"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/core/services"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, services.SeedDemoData(ctx, repos, now, slog.Default()))
	// A second run is a no-op.
	require.NoError(t, services.SeedDemoData(ctx, repos, now, slog.Default()))

	accountant, err := repos.UserRepo.FindUserByEmail(ctx, services.DemoAccountantEmail)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAccountant, accountant.Role)
	assert.True(t, utils.CheckPasswordHash(services.DemoPassword, accountant.PasswordHash))

	client, err := repos.UserRepo.FindUserByEmail(ctx, services.DemoClientEmail)
	require.NoError(t, err)

	businesses, err := repos.BusinessRepo.ListBusinessesByOwner(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, "Smith Consulting Ltd", businesses[0].CompanyName)
	assert.True(t, businesses[0].IsPrimary)

	grants, err := repos.AccountantClientRepo.ListGrantsByAccountant(ctx, accountant.ID)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, businesses[0].ID, grants[0].BusinessID)
	assert.True(t, grants[0].HasAccess)
}
