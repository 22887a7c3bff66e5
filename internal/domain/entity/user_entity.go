package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds whatever the configured credential checker produced:
// plaintext by default, a bcrypt hash when hashing is enabled.
type User struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Password   string    `json:"-"`
	ProfilePic string    `json:"profile_pic"`
	Interests  []string  `json:"interests"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u User) EntityID() int64 { return u.ID }

func (u User) WithID(id int64) User {
	u.ID = id
	return u
}

func (u User) Clone() User {
	c := u
	c.Interests = append(make([]string, 0, len(u.Interests)), u.Interests...)
	return c
}
