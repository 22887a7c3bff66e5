package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() Event {
	return Event{
		ID:          1,
		Title:       "Fest",
		Description: "Taste the best dishes in Goa!",
		Category:    "Food",
		Location:    "Panaji",
		DateTime:    "2025-08-20T18:00:00",
		Price:       200,
		OrganizerID: 1,
		Attendees:   Members{1},
		CreatedAt:   time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestEventMergeOverwritesKnownAndKeepsUnknown(t *testing.T) {
	e := sampleEvent()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Feast","price":150,"id":42,"capacity":300,"attendees":[2,2,3]}`), &payload))

	got, err := e.Merge(payload)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Feast", got.Title)
	assert.Equal(t, 150.0, got.Price)
	assert.Equal(t, Members{2, 3}, got.Attendees)
	assert.Equal(t, 300.0, got.Extra["capacity"])
	assert.Equal(t, "Fest", e.Title, "receiver must not change")
}

func TestEventMergeRejectsWrongTypes(t *testing.T) {
	cases := map[string]map[string]any{
		"title":          {"title": 3.0},
		"price":          {"price": "free"},
		"organizer_id":   {"organizer_id": 1.5},
		"organizer 0":    {"organizer_id": 0.0},
		"organizer 1e20": {"organizer_id": 1e20},
		"organizer 2^63": {"organizer_id": float64(1 << 63)},
		"attendees":      {"attendees": "1"},
		"attendee -1":    {"attendees": []any{2.0, -1.0}},
		"attendee 1e20":  {"attendees": []any{1e20}},
		"created_at":     {"created_at": "yesterday"},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sampleEvent().Merge(payload)
			assert.ErrorIs(t, err, ErrInvalidField)
		})
	}
}

func TestEventMergeAcceptsJSONNumberID(t *testing.T) {
	out, err := sampleEvent().Merge(map[string]any{"organizer_id": json.Number("9007199254740992")})
	require.NoError(t, err)
	assert.Equal(t, int64(1<<53), out.OrganizerID)
}

func TestEventSummaryOmitsPrivateFields(t *testing.T) {
	e := sampleEvent()
	e.Extra = map[string]any{"capacity": 300, "description": "shadow"}

	b, err := json.Marshal(e.Summary())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"description", "attendees", "organizer_id"} {
		assert.NotContains(t, m, k)
	}
	assert.Equal(t, "Fest", m["title"])
	assert.Equal(t, 300.0, m["capacity"])
}

func TestEventMarshalIncludesExtra(t *testing.T) {
	e := sampleEvent()
	e.Extra = map[string]any{"venue_notes": "bring cash", "title": "ignored"}

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "bring cash", m["venue_notes"])
	assert.Equal(t, "Fest", m["title"])
	assert.Equal(t, []any{1.0}, m["attendees"])
}
