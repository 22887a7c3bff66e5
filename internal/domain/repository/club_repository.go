package repository

import (
	"context"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
)

// ClubRepository defines the storage operations for clubs.
type ClubRepository interface {
	Create(ctx context.Context, c entity.Club) (entity.Club, error)
	GetByID(ctx context.Context, id int64) (entity.Club, error)
	Update(ctx context.Context, id int64, mutate func(entity.Club) (entity.Club, error)) (entity.Club, error)
	List(ctx context.Context) ([]entity.Club, error)
}
