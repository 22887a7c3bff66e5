package application

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
	"github.com/oksasatya/happnhere-api/pkg/helpers"
)

const placeholderTokenPrefix = "jwt-token-placeholder-for-user-"

// PlaceholderTokens issues the predictable demo token
// "jwt-token-placeholder-for-user-<id>". It is not a credential: anyone can
// forge one for any id.
type PlaceholderTokens struct{}

func (PlaceholderTokens) Issue(_ context.Context, u entity.User) (string, time.Time, error) {
	return placeholderTokenPrefix + strconv.FormatInt(u.ID, 10), time.Time{}, nil
}

func (PlaceholderTokens) Resolve(_ context.Context, token string) (int64, error) {
	rest, ok := strings.CutPrefix(token, placeholderTokenPrefix)
	if !ok {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}

func sessionKey(userID int64) string {
	return "user:session:" + strconv.FormatInt(userID, 10)
}

// JWTTokens issues signed access tokens. When Redis is configured the latest
// session id per user is kept there and older tokens stop resolving.
type JWTTokens struct {
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func (t *JWTTokens) Issue(ctx context.Context, u entity.User) (string, time.Time, error) {
	sid := uuid.NewString()
	token, exp, err := t.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return "", time.Time{}, err
	}
	if t.Redis != nil {
		key := sessionKey(u.ID)
		pipe := t.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"sid":        sid,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, t.JWT.TTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && t.Logger != nil {
			t.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return token, exp, nil
}

func (t *JWTTokens) Resolve(ctx context.Context, token string) (int64, error) {
	claims, err := t.JWT.ParseAccessToken(token)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if t.Redis != nil {
		sid, rErr := t.Redis.HGet(ctx, sessionKey(claims.UserID), "sid").Result()
		if rErr != nil || sid != claims.SessionID {
			return 0, ErrInvalidToken
		}
	}
	return claims.UserID, nil
}
