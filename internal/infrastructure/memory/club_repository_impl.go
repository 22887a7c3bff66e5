package memory

import (
	"context"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
	"github.com/oksasatya/happnhere-api/internal/domain/repository"
)

type ClubRepository struct {
	clubs *Collection[entity.Club]
}

func NewClubRepository() *ClubRepository {
	return &ClubRepository{clubs: NewCollection[entity.Club]()}
}

func (r *ClubRepository) Create(_ context.Context, c entity.Club) (entity.Club, error) {
	return r.clubs.Insert(c), nil
}

func (r *ClubRepository) GetByID(_ context.Context, id int64) (entity.Club, error) {
	c, ok := r.clubs.Get(id)
	if !ok {
		return entity.Club{}, repository.ErrNotFound
	}
	return c, nil
}

func (r *ClubRepository) Update(_ context.Context, id int64, mutate func(entity.Club) (entity.Club, error)) (entity.Club, error) {
	return r.clubs.Update(id, mutate)
}

func (r *ClubRepository) List(_ context.Context) ([]entity.Club, error) {
	return r.clubs.List(), nil
}

var _ repository.ClubRepository = (*ClubRepository)(nil)
