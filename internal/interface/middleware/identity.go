package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/happnhere-api/pkg/helpers"
	"github.com/oksasatya/happnhere-api/pkg/response"
)

const CtxUserIDKey = "userID"

// ResolveFunc maps a login token to the user id it was issued for.
type ResolveFunc func(ctx context.Context, token string) (int64, error)

// Identity resolves the acting user for the request. The token is read from
// the Authorization bearer header, then the access_token cookie. Requests
// without a token act as fallbackID; a token that does not resolve is
// rejected with 401.
func Identity(resolve ResolveFunc, fallbackID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if ck, err := c.Cookie(helpers.AccessTokenCookie); err == nil {
				token = ck
			}
		}
		if token == "" {
			c.Set(CtxUserIDKey, fallbackID)
			c.Next()
			return
		}
		uid, err := resolve(c.Request.Context(), token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

// UserID returns the acting user set by Identity, or 0 when absent.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserIDKey)
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
