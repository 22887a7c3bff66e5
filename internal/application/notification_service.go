package application

import "context"

type Notification struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

// NotificationService serves the in-app notification feed. The feed is a
// fixed sample; delivered notifications go out by email through the worker.
type NotificationService struct{}

func NewNotificationService() *NotificationService { return &NotificationService{} }

func (s *NotificationService) List(_ context.Context, _ int64) []Notification {
	return []Notification{
		{ID: 1, Message: "Event 'Goa Food Festival' is starting soon!", Read: false},
		{ID: 2, Message: "New post in 'Goa Hikers Club'", Read: true},
	}
}
