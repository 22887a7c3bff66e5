package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/config"
	"github.com/oksasatya/happnhere-api/internal/application"
	"github.com/oksasatya/happnhere-api/internal/domain/repository"
	"github.com/oksasatya/happnhere-api/internal/infrastructure/memory"
	"github.com/oksasatya/happnhere-api/pkg/helpers"
)

// Infra carries the optional infrastructure clients. Leave a field nil to
// run without that backend.
type Infra struct {
	Redis     *redis.Client
	Publisher application.Publisher
	Index     application.EventIndex
	Storage   application.ObjectStorage
}

// Container is built once per process (or per test) and owns the stores and
// services every HTTP module shares.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Redis  *redis.Client

	JWT     *helpers.JWTManager
	Cookies *helpers.Manager

	Users  repository.UserRepository
	Events repository.EventRepository
	Clubs  repository.ClubRepository

	UserService         *application.UserService
	EventService        *application.EventService
	ClubService         *application.ClubService
	NotificationService *application.NotificationService
	PaymentService      *application.PaymentService
}

func New(cfg *config.Config, logger *logrus.Logger, infra Infra) *Container {
	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Redis:   infra.Redis,
		JWT:     helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL),
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
		Users:   memory.NewUserRepository(),
		Events:  memory.NewEventRepository(),
		Clubs:   memory.NewClubRepository(),
	}

	var creds application.CredentialChecker = application.PlainCredentials{}
	if cfg.PasswordHashing == config.PasswordBcrypt {
		creds = application.BcryptCredentials{}
	}
	var tokens application.TokenIssuer = application.PlaceholderTokens{}
	if cfg.TokenMode == config.TokenModeJWT {
		tokens = &application.JWTTokens{JWT: c.JWT, Redis: infra.Redis, Logger: logger}
	}

	c.UserService = application.NewUserService(c.Users, creds, tokens, infra.Storage, infra.Publisher, logger)
	c.EventService = application.NewEventService(c.Events, c.Users, infra.Index, infra.Publisher, logger)
	c.ClubService = application.NewClubService(c.Clubs, c.Users, infra.Publisher, logger)
	c.NotificationService = application.NewNotificationService()
	c.PaymentService = application.NewPaymentService(infra.Publisher, logger)
	return c
}
