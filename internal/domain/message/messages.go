// Package message defines the domain events the API publishes and the
// notification worker consumes. Routing keys double as topic-exchange keys.
package message

import "time"

const (
	UserRegistered = "user.registered"
	EventCreated   = "event.created"
	EventJoined    = "event.joined"
	ClubFollowed   = "club.followed"
	PaymentCreated = "payment.created"
)

// Recipient identifies who a notification is about.
type Recipient struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type UserRegisteredBody struct {
	Recipient
	At time.Time `json:"at"`
}

type EventCreatedBody struct {
	EventID     int64     `json:"event_id"`
	Title       string    `json:"title"`
	OrganizerID int64     `json:"organizer_id"`
	At          time.Time `json:"at"`
}

type EventJoinedBody struct {
	Recipient
	EventID  int64     `json:"event_id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	DateTime string    `json:"date_time"`
	At       time.Time `json:"at"`
}

type ClubFollowedBody struct {
	Recipient
	ClubID   int64     `json:"club_id"`
	ClubName string    `json:"club_name"`
	At       time.Time `json:"at"`
}

type PaymentCreatedBody struct {
	PaymentID string    `json:"payment_id"`
	Details   any       `json:"details"`
	At        time.Time `json:"at"`
}
