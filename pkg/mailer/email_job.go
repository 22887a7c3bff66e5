package mailer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/oksasatya/happnhere-api/internal/domain/message"
	mailtpl "github.com/oksasatya/happnhere-api/pkg/mailer/templates"
)

var (
	ErrUnknownEvent = errors.New("no notification for routing key")
	ErrNoRecipient  = errors.New("notification has no recipient email")
)

// EmailJob is a notification ready to render: the template base name and
// the data it is executed with.
type EmailJob struct {
	To       string         `json:"to"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data,omitempty"`
}

// NotifyKeys are the routing keys the notification worker binds its queue to.
var NotifyKeys = []string{message.UserRegistered, message.EventJoined, message.ClubFollowed}

// JobFromEvent decodes a domain event body published under key and maps it
// to the email it should trigger.
func JobFromEvent(appName, key string, body []byte) (EmailJob, error) {
	var job EmailJob
	switch key {
	case message.UserRegistered:
		var ev message.UserRegisteredBody
		if err := json.Unmarshal(body, &ev); err != nil {
			return EmailJob{}, fmt.Errorf("decode %s: %w", key, err)
		}
		job = EmailJob{
			To:       ev.Email,
			Template: mailtpl.Welcome,
			Data:     mailtpl.NewWelcomeData(appName, ev.Name, ev.Email, ev.At),
		}
	case message.EventJoined:
		var ev message.EventJoinedBody
		if err := json.Unmarshal(body, &ev); err != nil {
			return EmailJob{}, fmt.Errorf("decode %s: %w", key, err)
		}
		job = EmailJob{
			To:       ev.Email,
			Template: mailtpl.EventJoined,
			Data:     mailtpl.NewEventJoinedData(appName, ev.Name, ev.Email, ev.EventID, ev.Title, ev.Location, ev.DateTime, ev.At),
		}
	case message.ClubFollowed:
		var ev message.ClubFollowedBody
		if err := json.Unmarshal(body, &ev); err != nil {
			return EmailJob{}, fmt.Errorf("decode %s: %w", key, err)
		}
		job = EmailJob{
			To:       ev.Email,
			Template: mailtpl.ClubFollowed,
			Data:     mailtpl.NewClubFollowedData(appName, ev.Name, ev.Email, ev.ClubID, ev.ClubName, ev.At),
		}
	default:
		return EmailJob{}, fmt.Errorf("%w: %q", ErrUnknownEvent, key)
	}
	if job.To == "" {
		return EmailJob{}, ErrNoRecipient
	}
	return job, nil
}
