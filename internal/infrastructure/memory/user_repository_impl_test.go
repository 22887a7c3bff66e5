package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
	"github.com/oksasatya/happnhere-api/internal/domain/repository"
)

func TestUserRepositoryRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	first, err := r.Create(ctx, entity.User{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	_, err = r.Create(ctx, entity.User{Name: "B", Email: "a@x.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	second, err := r.Create(ctx, entity.User{Name: "C", Email: "A@x.com"})
	require.NoError(t, err, "email match is case-sensitive")
	assert.Equal(t, int64(2), second.ID)
}

func TestUserRepositoryFind(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	_, _ = r.Create(ctx, entity.User{Email: "a@x.com", Password: "p"})

	u, err := r.Find(ctx, func(u entity.User) bool { return u.Password == "p" })
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = r.Find(ctx, func(entity.User) bool { return false })
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEventRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	r := NewEventRepository()
	e, _ := r.Create(ctx, entity.Event{Title: "Fest"})

	require.NoError(t, r.Delete(ctx, e.ID))
	_, err := r.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, e.ID), repository.ErrNotFound)
}
