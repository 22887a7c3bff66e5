package templates

import (
	"time"
)

type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithEvent(id int64, title, location, dateTime string) Option {
	return func(d *EmailData) {
		d.EventID = id
		d.EventTitle = title
		d.EventLocation = location
		d.EventDateTime = dateTime
	}
}

func WithClub(id int64, name string) Option {
	return func(d *EmailData) {
		d.ClubID = id
		d.ClubName = name
	}
}

// NewBaseEmailData fills the recipient and app fields, then applies opts.
func NewBaseEmailData(appName, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:    name,
		Email:   email,
		Type:    typ,
		AppName: appName,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(appName, name, email string, at time.Time) map[string]any {
	return ToMap(NewBaseEmailData(appName, Welcome, name, email, WithTime(at)))
}

func NewEventJoinedData(appName, name, email string, eventID int64, title, location, dateTime string, at time.Time) map[string]any {
	return ToMap(NewBaseEmailData(appName, EventJoined, name, email,
		WithEvent(eventID, title, location, dateTime), WithTime(at)))
}

func NewClubFollowedData(appName, name, email string, clubID int64, clubName string, at time.Time) map[string]any {
	return ToMap(NewBaseEmailData(appName, ClubFollowed, name, email, WithClub(clubID, clubName), WithTime(at)))
}
