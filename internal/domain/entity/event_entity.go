package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidField is returned by Event.Merge when a known field has the wrong type.
var ErrInvalidField = errors.New("invalid field")

// Event is a local event users can join. DateTime is kept verbatim as sent
// by the client. Extra carries keys supplied on update that have no typed
// field; they are serialised next to the known fields.
type Event struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Location    string         `json:"location"`
	DateTime    string         `json:"date_time"`
	Price       float64        `json:"price"`
	OrganizerID int64          `json:"organizer_id"`
	Attendees   Members        `json:"attendees"`
	CreatedAt   time.Time      `json:"created_at"`
	Extra       map[string]any `json:"-"`
}

// EventSummary is the list projection of an Event: description, attendees
// and organizer are left out.
type EventSummary struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Category  string         `json:"category"`
	Location  string         `json:"location"`
	DateTime  string         `json:"date_time"`
	Price     float64        `json:"price"`
	CreatedAt time.Time      `json:"created_at"`
	Extra     map[string]any `json:"-"`
}

func (e Event) EntityID() int64 { return e.ID }

func (e Event) WithID(id int64) Event {
	e.ID = id
	return e
}

func (e Event) Clone() Event {
	out := e
	out.Attendees = e.Attendees.Clone()
	if e.Extra != nil {
		out.Extra = make(map[string]any, len(e.Extra))
		for k, v := range e.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

func (e Event) Summary() EventSummary {
	s := EventSummary{
		ID:        e.ID,
		Title:     e.Title,
		Category:  e.Category,
		Location:  e.Location,
		DateTime:  e.DateTime,
		Price:     e.Price,
		CreatedAt: e.CreatedAt,
	}
	for k, v := range e.Extra {
		if k == "description" || k == "attendees" || k == "organizer_id" {
			continue
		}
		if s.Extra == nil {
			s.Extra = make(map[string]any)
		}
		s.Extra[k] = v
	}
	return s
}

// Merge overwrites the event with the supplied fields, last write wins.
// The id is never overwritten. Known fields must carry a value of the
// matching JSON type; unknown keys are stored in Extra.
func (e Event) Merge(fields map[string]any) (Event, error) {
	out := e.Clone()
	for k, v := range fields {
		var err error
		switch k {
		case "id":
			continue
		case "title":
			out.Title, err = asString(k, v)
		case "description":
			out.Description, err = asString(k, v)
		case "category":
			out.Category, err = asString(k, v)
		case "location":
			out.Location, err = asString(k, v)
		case "date_time":
			out.DateTime, err = asString(k, v)
		case "price":
			out.Price, err = asNumber(k, v)
		case "organizer_id":
			out.OrganizerID, err = asID(k, v)
		case "attendees":
			out.Attendees, err = asMembers(k, v)
		case "created_at":
			var s string
			if s, err = asString(k, v); err == nil {
				out.CreatedAt, err = time.Parse(time.RFC3339Nano, s)
				if err != nil {
					err = fmt.Errorf("%w: created_at must be an RFC 3339 timestamp", ErrInvalidField)
				}
			}
		default:
			if out.Extra == nil {
				out.Extra = make(map[string]any)
			}
			out.Extra[k] = v
		}
		if err != nil {
			return e, err
		}
	}
	return out, nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	return marshalWithExtra(plain(e), e.Extra)
}

func (s EventSummary) MarshalJSON() ([]byte, error) {
	type plain EventSummary
	return marshalWithExtra(plain(s), s.Extra)
}

func marshalWithExtra(base any, extra map[string]any) ([]byte, error) {
	b, err := json.Marshal(base)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := m[k]; ok {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		m[k] = raw
	}
	return json.Marshal(m)
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidField, key)
	}
	return s, nil
}

func asNumber(key string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidField, key)
}

// asID accepts whole numbers in 1..MaxInt64. 1<<63 is the first float64
// past the int64 range.
func asID(key string, v any) (int64, error) {
	f, err := asNumber(key, v)
	if err != nil || f != math.Trunc(f) || f <= 0 || f >= 1<<63 {
		return 0, fmt.Errorf("%w: %s must be a positive integer id", ErrInvalidField, key)
	}
	return int64(f), nil
}

// asMembers converts a JSON array of ids, dropping repeats so the set stays unique.
func asMembers(key string, v any) (Members, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of ids", ErrInvalidField, key)
	}
	out := make(Members, 0, len(items))
	for _, it := range items {
		id, err := asID(key, it)
		if err != nil {
			return nil, err
		}
		_ = out.Add(id)
	}
	return out, nil
}
