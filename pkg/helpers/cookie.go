package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookie = "access_token"

type Manager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *Manager {
	return &Manager{Domain: domain, Secure: secure}
}

// SetAccessToken stores the login token so browser clients send it back
// without an Authorization header.
func (m *Manager) SetAccessToken(c *gin.Context, token string, exp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, token, maxAgeFrom(exp), "/", m.Domain, m.Secure, true)
}

func maxAgeFrom(exp time.Time) int {
	if exp.IsZero() {
		return 0
	}
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
