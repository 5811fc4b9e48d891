package memory

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

type userRepository struct {
	users *table[domain.User]
}

func newUserRepository() *userRepository {
	return &userRepository{
		users: newTable("user", func(u domain.User) string { return u.ID }, cloneUser),
	}
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func (r *userRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	return r.users.get(userID)
}

func (r *userRepository) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.users.first(email, func(u domain.User) bool { return u.Email == email })
}

func (r *userRepository) FindUsersByIDs(_ context.Context, userIDs []string) (map[string]domain.User, error) {
	return r.users.pick(userIDs), nil
}

func (r *userRepository) SaveUser(_ context.Context, user domain.User) error {
	return r.users.insert(user, func(existing domain.User) bool { return existing.Email == user.Email })
}

func (r *userRepository) UpdateUser(_ context.Context, userID string, patch domain.UserPatch, now time.Time) (*domain.User, error) {
	return r.users.update(userID, func(u *domain.User) error {
		if err := u.CheckVersion("user", userID, patch.ExpectedVersion); err != nil {
			return err
		}
		u.Apply(patch)
		u.Touch(now)
		return nil
	})
}
