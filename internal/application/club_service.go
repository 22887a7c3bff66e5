package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
	"github.com/oksasatya/happnhere-api/internal/domain/message"
	repo "github.com/oksasatya/happnhere-api/internal/domain/repository"
)

type ClubService struct {
	Repo      repo.ClubRepository
	Users     repo.UserRepository
	Publisher Publisher
	Logger    *logrus.Logger
	Now       func() time.Time
}

func NewClubService(clubs repo.ClubRepository, users repo.UserRepository, pub Publisher, logger *logrus.Logger) *ClubService {
	return &ClubService{Repo: clubs, Users: users, Publisher: pub, Logger: logger, Now: utcNow}
}

func (s *ClubService) Create(ctx context.Context, name, description string) (entity.Club, error) {
	c, err := s.Repo.Create(ctx, entity.Club{
		Name:        name,
		Description: description,
		Members:     entity.Members{},
		CreatedAt:   s.Now(),
	})
	if err != nil {
		return entity.Club{}, err
	}
	counters.Add(metricClubsCreated, 1)
	return c, nil
}

func (s *ClubService) List(ctx context.Context) ([]entity.Club, error) {
	return s.Repo.List(ctx)
}

// Follow adds userID to the club's members. Unlike joining an event,
// following again is not an error and leaves the members unchanged.
func (s *ClubService) Follow(ctx context.Context, id, userID int64) (entity.Club, error) {
	added := false
	c, err := s.Repo.Update(ctx, id, func(c entity.Club) (entity.Club, error) {
		added = c.Members.Add(userID) == nil
		return c, nil
	})
	if errors.Is(err, repo.ErrNotFound) {
		return entity.Club{}, ErrClubNotFound
	}
	if err != nil {
		return entity.Club{}, err
	}
	if !added {
		return c, nil
	}
	counters.Add(metricClubsFollowed, 1)
	if u, uErr := s.Users.GetByID(ctx, userID); uErr == nil {
		publish(ctx, s.Publisher, s.Logger, message.ClubFollowed, message.ClubFollowedBody{
			Recipient: recipientOf(u),
			ClubID:    c.ID,
			ClubName:  c.Name,
			At:        s.Now(),
		})
	}
	return c, nil
}
