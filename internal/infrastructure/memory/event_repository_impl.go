package memory

import (
	"context"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
	"github.com/oksasatya/happnhere-api/internal/domain/repository"
)

type EventRepository struct {
	events *Collection[entity.Event]
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: NewCollection[entity.Event]()}
}

func (r *EventRepository) Create(_ context.Context, e entity.Event) (entity.Event, error) {
	return r.events.Insert(e), nil
}

func (r *EventRepository) GetByID(_ context.Context, id int64) (entity.Event, error) {
	e, ok := r.events.Get(id)
	if !ok {
		return entity.Event{}, repository.ErrNotFound
	}
	return e, nil
}

func (r *EventRepository) Update(_ context.Context, id int64, mutate func(entity.Event) (entity.Event, error)) (entity.Event, error) {
	return r.events.Update(id, mutate)
}

func (r *EventRepository) Delete(_ context.Context, id int64) error {
	if !r.events.Delete(id) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EventRepository) List(_ context.Context) ([]entity.Event, error) {
	return r.events.List(), nil
}

var _ repository.EventRepository = (*EventRepository)(nil)
