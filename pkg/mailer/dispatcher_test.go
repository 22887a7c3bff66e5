package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/happnhere-api/internal/domain/message"
)

type sent struct{ to, subject, text, html string }

type fakeSender struct {
	out []sent
	err error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.out = append(f.out, sent{to, subject, text, html})
	return nil
}

func newDispatcher(s Sender) *Dispatcher {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewDispatcher(s, "happnHere", l)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

var at = time.Date(2025, 8, 20, 18, 0, 0, 0, time.UTC)

func TestDispatchWelcome(t *testing.T) {
	s := &fakeSender{}
	body := mustJSON(t, message.UserRegisteredBody{
		Recipient: message.Recipient{UserID: 1, Name: "Asha", Email: "asha@x.com"},
		At:        at,
	})

	assert.Equal(t, Ack, newDispatcher(s).Handle(context.Background(), message.UserRegistered, body))
	require.Len(t, s.out, 1)
	assert.Equal(t, "asha@x.com", s.out[0].to)
	assert.Equal(t, "Welcome to happnHere, Asha!", s.out[0].subject)
	assert.Contains(t, s.out[0].text, "20 August 2025, 18:00")
	assert.Contains(t, s.out[0].html, "asha@x.com")
}

func TestDispatchEventJoined(t *testing.T) {
	s := &fakeSender{}
	body := mustJSON(t, message.EventJoinedBody{
		Recipient: message.Recipient{UserID: 1, Name: "Asha", Email: "asha@x.com"},
		EventID:   1,
		Title:     "Goa Food Festival",
		Location:  "Panaji",
		DateTime:  "2025-08-20T18:00:00",
		At:        at,
	})

	assert.Equal(t, Ack, newDispatcher(s).Handle(context.Background(), message.EventJoined, body))
	require.Len(t, s.out, 1)
	assert.Equal(t, "You're going to Goa Food Festival", s.out[0].subject)
	assert.Contains(t, s.out[0].text, "Where: Panaji")
}

func TestDispatchClubFollowed(t *testing.T) {
	s := &fakeSender{}
	body := mustJSON(t, message.ClubFollowedBody{
		Recipient: message.Recipient{UserID: 1, Name: "Asha", Email: "asha@x.com"},
		ClubID:    1,
		ClubName:  "Goa Hikers Club",
		At:        at,
	})

	assert.Equal(t, Ack, newDispatcher(s).Handle(context.Background(), message.ClubFollowed, body))
	require.Len(t, s.out, 1)
	assert.Equal(t, "You now follow Goa Hikers Club", s.out[0].subject)
}

func TestDispatchDropsAndRequeues(t *testing.T) {
	ctx := context.Background()
	valid := mustJSON(t, message.UserRegisteredBody{Recipient: message.Recipient{Name: "A", Email: "a@x.com"}, At: at})

	assert.Equal(t, Drop, newDispatcher(&fakeSender{}).Handle(ctx, message.UserRegistered, []byte("{not json")))
	assert.Equal(t, Drop, newDispatcher(&fakeSender{}).Handle(ctx, message.PaymentCreated, []byte(`{}`)))
	assert.Equal(t, Drop, newDispatcher(&fakeSender{}).Handle(ctx, message.UserRegistered, []byte(`{"name":"no email"}`)))
	assert.Equal(t, Requeue, newDispatcher(&fakeSender{err: errors.New("mailgun down")}).Handle(ctx, message.UserRegistered, valid))
}

func TestJobFromEventUnknownKey(t *testing.T) {
	_, err := JobFromEvent("app", "something.else", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownEvent)
}
