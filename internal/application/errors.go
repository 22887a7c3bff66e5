package application

import (
	"errors"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrEventNotFound      = errors.New("event not found")
	ErrAlreadyJoined      = errors.New("already joined this event")
	ErrClubNotFound       = errors.New("club not found")
	ErrStorageDisabled    = errors.New("object storage not configured")
	ErrInvalidField       = entity.ErrInvalidField
)
