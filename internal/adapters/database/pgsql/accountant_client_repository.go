package pgsql

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountantClientRepository struct {
	BaseRepository
}

func newPgxAccountantClientRepository(pool *pgxpool.Pool) portsrepo.AccountantClientRepositoryFacade {
	return &PgxAccountantClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountantClientRepositoryFacade = (*PgxAccountantClientRepository)(nil)

const grantColumns = `id, accountant_id, client_id, business_id, has_access, created_at, updated_at`

const fullGrantSelectQuery = `SELECT ` + grantColumns + ` FROM accountant_clients `

func scanGrant(row pgx.Row) (domain.AccountantClient, error) {
	var g domain.AccountantClient
	err := row.Scan(&g.ID, &g.AccountantID, &g.ClientID, &g.BusinessID, &g.HasAccess, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (r *PgxAccountantClientRepository) ListGrantsByAccountant(ctx context.Context, accountantID string) ([]domain.AccountantClient, error) {
	return queryList(ctx, r.Pool, "grant", scanGrant,
		fullGrantSelectQuery+`WHERE accountant_id = $1 ORDER BY created_at, seq`, accountantID)
}

func (r *PgxAccountantClientRepository) ListGrantsByClient(ctx context.Context, clientID string) ([]domain.AccountantClient, error) {
	return queryList(ctx, r.Pool, "grant", scanGrant,
		fullGrantSelectQuery+`WHERE client_id = $1 ORDER BY created_at, seq`, clientID)
}

func (r *PgxAccountantClientRepository) ListGrantsByBusiness(ctx context.Context, businessID string) ([]domain.AccountantClient, error) {
	return queryList(ctx, r.Pool, "grant", scanGrant,
		fullGrantSelectQuery+`WHERE business_id = $1 ORDER BY created_at, seq`, businessID)
}

func (r *PgxAccountantClientRepository) FindGrant(ctx context.Context, accountantID, businessID string) (*domain.AccountantClient, error) {
	return queryOne(ctx, r.Pool, "grant", accountantID+"/"+businessID, scanGrant,
		fullGrantSelectQuery+`WHERE accountant_id = $1 AND business_id = $2 AND has_access ORDER BY created_at, seq LIMIT 1`,
		accountantID, businessID)
}

// AssignAccountantToClient upserts on the (accountant, client, business) triple.
// Re-enabling a revoked grant moves updated_at forward; an active grant is returned untouched.
func (r *PgxAccountantClientRepository) AssignAccountantToClient(ctx context.Context, grant domain.AccountantClient) (*domain.AccountantClient, error) {
	query := `
		INSERT INTO accountant_clients (` + grantColumns + `)
		VALUES ($1, $2, $3, $4, TRUE, $5, $6)
		ON CONFLICT (accountant_id, client_id, business_id) DO UPDATE SET
			has_access = TRUE,
			updated_at = CASE
				WHEN accountant_clients.has_access THEN accountant_clients.updated_at
				ELSE GREATEST(accountant_clients.updated_at, EXCLUDED.updated_at)
			END
		RETURNING ` + grantColumns + `;
	`
	saved, err := scanGrant(r.Pool.QueryRow(ctx, query,
		grant.ID, grant.AccountantID, grant.ClientID, grant.BusinessID, grant.CreatedAt, grant.UpdatedAt,
	))
	if err != nil {
		return nil, mapWriteError("grant", grant.ID, err)
	}
	return &saved, nil
}

func (r *PgxAccountantClientRepository) RevokeAccountantAccess(ctx context.Context, key domain.GrantKey, now time.Time) (int, error) {
	query := `
		UPDATE accountant_clients SET
			updated_at = CASE WHEN has_access THEN GREATEST(updated_at, $4) ELSE updated_at END,
			has_access = FALSE
		WHERE accountant_id = $1 AND client_id = $2 AND business_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, key.AccountantID, key.ClientID, key.BusinessID, now)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to revoke grant", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.NewNotFoundError("grant", key.AccountantID+"/"+key.ClientID+"/"+key.BusinessID)
	}
	return int(cmdTag.RowsAffected()), nil
}
