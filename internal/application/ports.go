package application

import (
	"context"
	"io"
	"time"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
)

// Publisher sends domain events; implemented by helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, body any) error
}

// EventIndex is a full-text index over events; implemented by search.EventIndex.
type EventIndex interface {
	Index(ctx context.Context, e entity.Event) error
	Remove(ctx context.Context, id int64) error
	Search(ctx context.Context, q string, size int) ([]int64, error)
}

// ObjectStorage stores uploaded files; implemented by helpers.GCSUploader.
type ObjectStorage interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// CredentialChecker prepares passwords for storage and compares them on login.
type CredentialChecker interface {
	Hash(plain string) (string, error)
	Matches(stored, plain string) bool
}

// TokenIssuer issues login tokens and maps them back to a user id.
type TokenIssuer interface {
	Issue(ctx context.Context, u entity.User) (token string, expires time.Time, err error)
	Resolve(ctx context.Context, token string) (int64, error)
}
