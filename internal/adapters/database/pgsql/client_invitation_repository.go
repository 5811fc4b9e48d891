package pgsql

import (
	"context"
	"net/http"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientInvitationRepository struct {
	BaseRepository
}

func newPgxClientInvitationRepository(pool *pgxpool.Pool) portsrepo.ClientInvitationRepositoryFacade {
	return &PgxClientInvitationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientInvitationRepositoryFacade = (*PgxClientInvitationRepository)(nil)

const invitationColumns = `id, accountant_id, email, token, status, expires_at, created_at, updated_at`

const fullInvitationSelectQuery = `SELECT ` + invitationColumns + ` FROM client_invitations `

func scanInvitation(row pgx.Row) (domain.ClientInvitation, error) {
	var i domain.ClientInvitation
	err := row.Scan(&i.ID, &i.AccountantID, &i.Email, &i.Token, &i.Status, &i.ExpiresAt, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (r *PgxClientInvitationRepository) SaveClientInvitation(ctx context.Context, i domain.ClientInvitation) error {
	query := `
		INSERT INTO client_invitations (` + invitationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		i.ID, i.AccountantID, i.Email, i.Token, i.Status, i.ExpiresAt, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("client invitation", i.ID, err)
	}
	return nil
}

func (r *PgxClientInvitationRepository) FindClientInvitationByID(ctx context.Context, invitationID string) (*domain.ClientInvitation, error) {
	return queryOne(ctx, r.Pool, "client invitation", invitationID, scanInvitation,
		fullInvitationSelectQuery+`WHERE id = $1`, invitationID)
}

func (r *PgxClientInvitationRepository) FindClientInvitationByToken(ctx context.Context, token string) (*domain.ClientInvitation, error) {
	return queryOne(ctx, r.Pool, "client invitation", "with given token", scanInvitation,
		fullInvitationSelectQuery+`WHERE token = $1`, token)
}

func (r *PgxClientInvitationRepository) ListClientInvitationsByAccountant(ctx context.Context, accountantID string) ([]domain.ClientInvitation, error) {
	return queryList(ctx, r.Pool, "client invitation", scanInvitation,
		fullInvitationSelectQuery+`WHERE accountant_id = $1 ORDER BY created_at, seq`, accountantID)
}

func (r *PgxClientInvitationRepository) UpdateClientInvitation(ctx context.Context, invitationID string, patch domain.ClientInvitationPatch, now time.Time) (*domain.ClientInvitation, error) {
	q := psql.Update("client_invitations").
		Set("updated_at", sq.Expr("GREATEST(updated_at, ?)", now)).
		Where(sq.Eq{"id": invitationID})
	q = setIf(q, "status", patch.Status)

	query, args, err := q.Suffix("RETURNING " + invitationColumns).ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build client invitation update", err)
	}
	return queryOne(ctx, r.Pool, "client invitation", invitationID, scanInvitation, query, args...)
}
