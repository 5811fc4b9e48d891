package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `id, email, password_hash, first_name, last_name, phone, role,
	address, city, postcode, is_active, created_at, updated_at, version`

const fullUserSelectQuery = `SELECT ` + userColumns + ` FROM users `

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone, &u.Role,
		&u.Address, &u.City, &u.Postcode, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.Version,
	)
	return u, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Phone, user.Role,
		user.Address, user.City, user.Postcode, user.IsActive, user.CreatedAt, user.UpdatedAt, user.Version,
	)
	if err != nil {
		return mapWriteError("user", user.ID, err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return queryOne(ctx, r.Pool, "user", userID, scanUser, fullUserSelectQuery+`WHERE id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return queryOne(ctx, r.Pool, "user", email, scanUser, fullUserSelectQuery+`WHERE email = $1`, email)
}

func (r *PgxUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error) {
	out := make(map[string]domain.User, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	users, err := queryList(ctx, r.Pool, "user", scanUser, fullUserSelectQuery+`WHERE id = ANY($1)`, userIDs)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, userID string, patch domain.UserPatch, now time.Time) (*domain.User, error) {
	q := psql.Update("users")
	q = setIf(q, "password_hash", patch.PasswordHash)
	q = setIf(q, "first_name", patch.FirstName)
	q = setIf(q, "last_name", patch.LastName)
	q = setIf(q, "phone", patch.Phone)
	q = setIf(q, "role", patch.Role)
	q = setIf(q, "address", patch.Address)
	q = setIf(q, "city", patch.City)
	q = setIf(q, "postcode", patch.Postcode)
	q = setIf(q, "is_active", patch.IsActive)

	return applyPatch(ctx, &r.BaseRepository, versionedUpdate{
		entity: "user", table: "users", id: userID, columns: userColumns,
		expected: patch.ExpectedVersion, now: now,
	}, q, scanUser)
}
