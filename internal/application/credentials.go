package application

import "github.com/oksasatya/happnhere-api/pkg/helpers"

// PlainCredentials stores and compares passwords verbatim. It is the
// default; set PASSWORD_HASHING=bcrypt for anything real.
type PlainCredentials struct{}

func (PlainCredentials) Hash(plain string) (string, error) { return plain, nil }

func (PlainCredentials) Matches(stored, plain string) bool { return stored == plain }

type BcryptCredentials struct{}

func (BcryptCredentials) Hash(plain string) (string, error) { return helpers.HashPassword(plain) }

func (BcryptCredentials) Matches(stored, plain string) bool {
	return helpers.CompareHashAndPassword(stored, plain)
}
