package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// UserRepository defines the storage operations for users.
type UserRepository interface {
	// Create stores u with a freshly assigned id. It fails with ErrDuplicate
	// when another user already has the same email.
	Create(ctx context.Context, u entity.User) (entity.User, error)
	GetByID(ctx context.Context, id int64) (entity.User, error)
	// Find returns the first user, in registration order, for
	// which match reports true.
	Find(ctx context.Context, match func(entity.User) bool) (entity.User, error)
	Update(ctx context.Context, id int64, mutate func(entity.User) (entity.User, error)) (entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}
