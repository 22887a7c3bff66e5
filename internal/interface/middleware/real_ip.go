package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP stores c.ClientIP() under "real_ip" for rate limiting and logging.
// Forwarding headers only count when the engine trusts the sender; see
// TrustProxies.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}

// TrustProxies limits which peers may set X-Forwarded-For and X-Real-IP.
// An empty list trusts nobody, so the socket address is used. platform
// "cloudflare" reads CF-Connecting-IP, "appengine" X-Appengine-Remote-Addr.
func TrustProxies(r *gin.Engine, proxies []string, platform string) error {
	if len(proxies) == 0 {
		proxies = nil
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "cloudflare":
		r.TrustedPlatform = gin.PlatformCloudflare
	case "appengine":
		r.TrustedPlatform = gin.PlatformGoogleAppEngine
	default:
		r.TrustedPlatform = ""
	}
	return nil
}
