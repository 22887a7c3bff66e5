package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
	"github.com/oksasatya/happnhere-api/internal/domain/message"
	repo "github.com/oksasatya/happnhere-api/internal/domain/repository"
)

const defaultSearchSize = 10

type EventService struct {
	Repo      repo.EventRepository
	Users     repo.UserRepository
	Index     EventIndex
	Publisher Publisher
	Logger    *logrus.Logger
	Now       func() time.Time
}

func NewEventService(events repo.EventRepository, users repo.UserRepository, index EventIndex, pub Publisher, logger *logrus.Logger) *EventService {
	return &EventService{
		Repo:      events,
		Users:     users,
		Index:     index,
		Publisher: pub,
		Logger:    logger,
		Now:       utcNow,
	}
}

type CreateEventInput struct {
	Title       string
	Description string
	Category    string
	Location    string
	DateTime    string
	Price       float64
}

// Create stores a new event organised by organizerID with no attendees.
func (s *EventService) Create(ctx context.Context, organizerID int64, in CreateEventInput) (entity.Event, error) {
	e, err := s.Repo.Create(ctx, entity.Event{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		DateTime:    in.DateTime,
		Price:       in.Price,
		OrganizerID: organizerID,
		Attendees:   entity.Members{},
		CreatedAt:   s.Now(),
	})
	if err != nil {
		return entity.Event{}, err
	}
	counters.Add(metricEventsCreated, 1)
	s.index(ctx, e)
	publish(ctx, s.Publisher, s.Logger, message.EventCreated, message.EventCreatedBody{
		EventID:     e.ID,
		Title:       e.Title,
		OrganizerID: e.OrganizerID,
		At:          e.CreatedAt,
	})
	return e, nil
}

// List returns the summary projection of every event in creation order.
func (s *EventService) List(ctx context.Context) ([]entity.EventSummary, error) {
	events, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return summaries(events), nil
}

func (s *EventService) Get(ctx context.Context, id int64) (entity.Event, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return entity.Event{}, ErrEventNotFound
	}
	return e, err
}

// Update merges fields into the event; see entity.Event.Merge for the rules.
func (s *EventService) Update(ctx context.Context, id int64, fields map[string]any) (entity.Event, error) {
	e, err := s.Repo.Update(ctx, id, func(e entity.Event) (entity.Event, error) {
		return e.Merge(fields)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return entity.Event{}, ErrEventNotFound
	}
	if err != nil {
		return entity.Event{}, err
	}
	s.index(ctx, e)
	return e, nil
}

// Delete removes the event. Attendee and organizer references are left as is.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	counters.Add(metricEventsDeleted, 1)
	if s.Index != nil {
		if err := s.Index.Remove(ctx, id); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("event_id", id).Warn("event index remove failed")
		}
	}
	return nil
}

// Join adds userID to the event's attendees. Joining twice is an error.
func (s *EventService) Join(ctx context.Context, id, userID int64) (entity.Event, error) {
	e, err := s.Repo.Update(ctx, id, func(e entity.Event) (entity.Event, error) {
		if err := e.Attendees.Add(userID); err != nil {
			return e, ErrAlreadyJoined
		}
		return e, nil
	})
	if errors.Is(err, repo.ErrNotFound) {
		return entity.Event{}, ErrEventNotFound
	}
	if err != nil {
		return entity.Event{}, err
	}
	counters.Add(metricEventsJoined, 1)
	if u, uErr := s.Users.GetByID(ctx, userID); uErr == nil {
		publish(ctx, s.Publisher, s.Logger, message.EventJoined, message.EventJoinedBody{
			Recipient: recipientOf(u),
			EventID:   e.ID,
			Title:     e.Title,
			Location:  e.Location,
			DateTime:  e.DateTime,
			At:        s.Now(),
		})
	}
	return e, nil
}

// Search finds events by title, category or location. It uses the search
// index when one is configured and a substring scan otherwise.
func (s *EventService) Search(ctx context.Context, q string, size int) ([]entity.EventSummary, error) {
	if size <= 0 || size > 50 {
		size = defaultSearchSize
	}
	if s.Index != nil {
		ids, err := s.Index.Search(ctx, q, size)
		if err == nil {
			out := make([]entity.EventSummary, 0, len(ids))
			for _, id := range ids {
				if e, gErr := s.Repo.GetByID(ctx, id); gErr == nil {
					out = append(out, e.Summary())
				}
			}
			return out, nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("event index search failed, scanning store")
		}
	}

	events, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(q))
	out := make([]entity.EventSummary, 0)
	for _, e := range events {
		if len(out) == size {
			break
		}
		if strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Category), needle) ||
			strings.Contains(strings.ToLower(e.Location), needle) {
			out = append(out, e.Summary())
		}
	}
	return out, nil
}

func (s *EventService) index(ctx context.Context, e entity.Event) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, e); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event_id", e.ID).Warn("event index failed")
	}
}

func summaries(events []entity.Event) []entity.EventSummary {
	out := make([]entity.EventSummary, 0, len(events))
	for _, e := range events {
		out = append(out, e.Summary())
	}
	return out
}
