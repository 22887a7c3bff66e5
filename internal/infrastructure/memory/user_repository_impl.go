package memory

import (
	"context"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
	"github.com/oksasatya/happnhere-api/internal/domain/repository"
)

type UserRepository struct {
	users *Collection[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: NewCollection[entity.User]()}
}

func (r *UserRepository) Create(_ context.Context, u entity.User) (entity.User, error) {
	created, ok := r.users.InsertUnless(u, func(existing entity.User) bool {
		return existing.Email == u.Email
	})
	if !ok {
		return entity.User{}, repository.ErrDuplicate
	}
	return created, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (entity.User, error) {
	u, ok := r.users.Get(id)
	if !ok {
		return entity.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) Find(_ context.Context, match func(entity.User) bool) (entity.User, error) {
	u, ok := r.users.Find(match)
	if !ok {
		return entity.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) Update(_ context.Context, id int64, mutate func(entity.User) (entity.User, error)) (entity.User, error) {
	return r.users.Update(id, mutate)
}

func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	return r.users.List(), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
