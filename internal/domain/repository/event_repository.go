package repository

import (
	"context"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
)

// EventRepository defines the storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, e entity.Event) (entity.Event, error)
	GetByID(ctx context.Context, id int64) (entity.Event, error)
	Update(ctx context.Context, id int64, mutate func(entity.Event) (entity.Event, error)) (entity.Event, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]entity.Event, error)
}
