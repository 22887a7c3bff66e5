package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/happnhere-api/internal/container"
	handlers "github.com/oksasatya/happnhere-api/internal/interface/http"
	"github.com/oksasatya/happnhere-api/internal/interface/middleware"
	"github.com/oksasatya/happnhere-api/internal/router/modules"
)

const welcomeText = "Welcome to the happnHere API! Go to /apidocs to see the documentation."

// InitModules builds the handlers from the container and registers every
// feature module. Call once per engine before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	identity := middleware.Identity(c.UserService.ResolveToken, c.Config.DemoUserID)

	var limiter *redis.Client
	if c.Config.RateLimitEnabled {
		limiter = c.Redis
	}

	r.Engine.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, welcomeText) })
	r.Use(middleware.RateLimit(limiter, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()))

	r.Add(modules.NewUserModule(handlers.NewUserHandler(c.UserService, c.Logger, c.Cookies), identity, limiter))
	r.Add(modules.NewEventModule(handlers.NewEventHandler(c.EventService, c.Logger), identity))
	r.Add(modules.NewClubModule(handlers.NewClubHandler(c.ClubService, c.Logger), identity))
	r.Add(modules.NewNotificationModule(handlers.NewNotificationHandler(c.NotificationService), identity))
	r.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(c.PaymentService)))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(limiter))
	}
}
