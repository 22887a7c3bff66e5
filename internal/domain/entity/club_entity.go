package entity

import "time"

// Club is a community users can follow. Clubs are only ever mutated by
// follow operations appending to Members.
type Club struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     Members   `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c Club) EntityID() int64 { return c.ID }

func (c Club) WithID(id int64) Club {
	c.ID = id
	return c
}

func (c Club) Clone() Club {
	out := c
	out.Members = c.Members.Clone()
	return out
}
