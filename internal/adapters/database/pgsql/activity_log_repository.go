package pgsql

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityLogRepository struct {
	BaseRepository
}

func newPgxActivityLogRepository(pool *pgxpool.Pool) portsrepo.ActivityLogRepositoryFacade {
	return &PgxActivityLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ActivityLogRepositoryFacade = (*PgxActivityLogRepository)(nil)

const activityLogColumns = `id, user_id, business_id, action, description, metadata, created_at`

const fullActivityLogSelectQuery = `SELECT ` + activityLogColumns + ` FROM activity_logs `

func scanActivityLog(row pgx.Row) (domain.ActivityLog, error) {
	var (
		a        domain.ActivityLog
		metadata []byte
	)
	err := row.Scan(&a.ID, &a.UserID, &a.BusinessID, &a.Action, &a.Description, &metadata, &a.CreatedAt)
	if len(metadata) > 0 {
		a.Metadata = metadata
	}
	return a, err
}

func (r *PgxActivityLogRepository) SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (` + activityLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.ID, entry.UserID, entry.BusinessID, entry.Action, entry.Description,
		nullableJSON(entry.Metadata), entry.CreatedAt,
	)
	if err != nil {
		return mapWriteError("activity log", entry.ID, err)
	}
	return nil
}

func (r *PgxActivityLogRepository) ListActivityLogsByUser(ctx context.Context, userID string) ([]domain.ActivityLog, error) {
	return queryList(ctx, r.Pool, "activity log", scanActivityLog,
		fullActivityLogSelectQuery+`WHERE user_id = $1 ORDER BY created_at, seq`, userID)
}

func (r *PgxActivityLogRepository) ListActivityLogsByBusiness(ctx context.Context, businessID string) ([]domain.ActivityLog, error) {
	return queryList(ctx, r.Pool, "activity log", scanActivityLog,
		fullActivityLogSelectQuery+`WHERE business_id = $1 ORDER BY created_at, seq`, businessID)
}
