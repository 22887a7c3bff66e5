package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	TokenModePlaceholder = "placeholder"
	TokenModeJWT         = "jwt"

	PasswordPlain  = "plain"
	PasswordBcrypt = "bcrypt"
)

// Config holds application configuration loaded from environment variables.
// Optional infrastructure (Redis, RabbitMQ, Elasticsearch, GCS, Mailgun) is
// disabled while its address or credentials are empty.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Identity used when a request carries no token
	DemoUserID int64

	// Auth
	TokenMode       string // placeholder, jwt
	PasswordHashing string // plain, bcrypt
	JWTSecret       string
	JWTTTL          time.Duration

	// Cookies
	CookieDomain string
	CookieSecure bool

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Peers allowed to set X-Forwarded-For; empty trusts none
	TrustedProxiesRaw string // comma-separated IPs or CIDRs
	TrustedPlatform   string // "cloudflare", "appengine" or empty

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// RabbitMQ
	RabbitMQURL         string
	RabbitMQExchange    string
	RabbitMQNotifyQueue string

	// Elasticsearch
	ElasticsearchAddrs string // comma-separated
	ElasticsearchUser  string
	ElasticsearchPass  string
	ESEventsIndex      string

	// Google Cloud Storage
	GCSBucket              string
	GCSCredentialsJSONPath string // optional; if empty, Application Default Credentials are used

	// Mailgun
	MailgunDomain string
	MailgunAPIKey string
	MailgunSender string

	MailSendEnabled     bool
	DebugMetricsEnabled bool
	HTTPLogEnabled      bool
	RateLimitEnabled    bool

	// Base URL cmd/seed talks to
	SeedAPIURL string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

func getchoice(key, def string, allowed ...string) string {
	v := strings.ToLower(getenv(key, def))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	log.Printf("invalid value for %s: %q, using default %q", key, v, def)
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "happnhere-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		DemoUserID: int64(getint("DEMO_USER_ID", 1)),

		TokenMode:       getchoice("AUTH_TOKEN_MODE", TokenModePlaceholder, TokenModePlaceholder, TokenModeJWT),
		PasswordHashing: getchoice("PASSWORD_HASHING", PasswordPlain, PasswordPlain, PasswordBcrypt),
		JWTSecret:       getenv("JWT_SECRET", "devaccesssecret"),
		JWTTTL:          getdur("JWT_TTL", time.Hour),

		CookieDomain: getenv("COOKIE_DOMAIN", "localhost"),
		CookieSecure: getbool("COOKIE_SECURE", false),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		TrustedProxiesRaw:  getenv("TRUSTED_PROXIES", ""),
		TrustedPlatform:    getenv("TRUSTED_PLATFORM", ""),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		RabbitMQURL:         getenv("RABBITMQ_URL", ""),
		RabbitMQExchange:    getenv("RABBITMQ_EXCHANGE", "happnhere.events"),
		RabbitMQNotifyQueue: getenv("RABBITMQ_NOTIFY_QUEUE", "happnhere.notifications"),

		ElasticsearchAddrs: getenv("ELASTICSEARCH_ADDRS", ""),
		ElasticsearchUser:  getenv("ELASTICSEARCH_USERNAME", ""),
		ElasticsearchPass:  getenv("ELASTICSEARCH_PASSWORD", ""),
		ESEventsIndex:      getenv("ES_EVENTS_INDEX", "events"),

		GCSBucket:              getenv("GCS_BUCKET", ""),
		GCSCredentialsJSONPath: getenv("GCS_CREDENTIALS_JSON", ""),

		MailgunDomain: getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey: getenv("MAILGUN_API_KEY", ""),
		MailgunSender: getenv("MAILGUN_SENDER", ""),

		MailSendEnabled:     getbool("MAIL_SEND_ENABLED", true),
		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
		RateLimitEnabled:    getbool("RATE_LIMIT_ENABLED", true),

		SeedAPIURL: getenv("SEED_API_URL", "http://localhost:8080/api"),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// TrustedProxies returns the trusted proxy IPs/CIDRs as slice
func (c *Config) TrustedProxies() []string {
	return splitList(c.TrustedProxiesRaw)
}

// ESAddrs returns Elasticsearch addresses as a slice
func (c *Config) ESAddrs() []string {
	return splitList(c.ElasticsearchAddrs)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
