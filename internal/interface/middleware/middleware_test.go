package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func resolveFixed(ctx context.Context, token string) (int64, error) {
	if token == "good" {
		return 42, nil
	}
	return 0, errors.New("bad token")
}

func identityEngine() *gin.Engine {
	r := gin.New()
	r.Use(Identity(resolveFixed, 1))
	r.GET("/who", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": UserID(c)})
	})
	return r
}

func TestIdentity(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(r *http.Request)
		status int
		body   string
	}{
		{"no token uses fallback", func(*http.Request) {}, http.StatusOK, `{"uid":1}`},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusOK, `{"uid":42}`},
		{"lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer good") }, http.StatusOK, `{"uid":42}`},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: "good"}) }, http.StatusOK, `{"uid":42}`},
		{"invalid token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			identityEngine().ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	const incoming = "6f1c2d8e-3b5a-4c8e-9f00-1a2b3c4d5e6f"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Body.String())
}

func realIPEngine(t *testing.T, proxies []string, platform string) *gin.Engine {
	r := gin.New()
	require.NoError(t, TrustProxies(r, proxies, platform))
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })
	return r
}

func TestRealIPIgnoresHeadersFromUntrustedPeers(t *testing.T) {
	r := realIPEngine(t, nil, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:4000"
	req.Header.Set("X-Forwarded-For", "127.0.0.1")
	req.Header.Set("X-Real-IP", "10.0.0.1")
	req.Header.Set("CF-Connecting-IP", "127.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "203.0.113.9", w.Body.String())
}

func TestRealIPHonoursTrustedProxy(t *testing.T) {
	r := realIPEngine(t, []string{"10.0.0.0/8"}, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:4000"
	req.Header.Set("X-Forwarded-For", "198.51.100.4")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "198.51.100.4", w.Body.String())

	req.RemoteAddr = "203.0.113.9:4000"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "203.0.113.9", w.Body.String())
}

func TestRealIPCloudflarePlatform(t *testing.T) {
	r := realIPEngine(t, nil, "cloudflare")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:4000"
	req.Header.Set("CF-Connecting-IP", "198.51.100.4")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "198.51.100.4", w.Body.String())
}

func TestTrustProxiesRejectsBadEntry(t *testing.T) {
	assert.Error(t, TrustProxies(gin.New(), []string{"not-an-ip"}, ""))
}

func TestSpoofedLoopbackDoesNotSkipLimiter(t *testing.T) {
	r := gin.New()
	require.NoError(t, TrustProxies(r, nil, ""))
	r.Use(RealIP())
	allow := AllowPrivateIP()
	r.GET("/", func(c *gin.Context) {
		if allow(c) {
			c.String(http.StatusOK, "skipped")
			return
		}
		c.String(http.StatusOK, "limited")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:4000"
	req.Header.Set("X-Forwarded-For", "127.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "limited", w.Body.String())
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(nil, 1, time.Minute, KeyByIP(), nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	c.Set("real_ip", "127.0.0.1")
	assert.True(t, allow(c))
	c.Set("real_ip", "10.1.2.3")
	assert.True(t, allow(c))
	c.Set("real_ip", "203.0.113.9")
	assert.False(t, allow(c))
}

func TestKeyByUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("real_ip", "203.0.113.9")
	assert.Equal(t, "rl:user:anon:ip:203.0.113.9", KeyByUserID()(c))
	c.Set(CtxUserIDKey, int64(5))
	assert.Equal(t, "rl:user:5", KeyByUserID()(c))
}
