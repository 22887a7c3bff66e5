package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/happnhere-api/internal/interface/http"
	"github.com/oksasatya/happnhere-api/internal/interface/middleware"
)

// UserModule routes:
// Public: POST /api/users/register, POST /api/users/login
// Acting user: GET /api/users/me, PUT /api/users/me, POST /api/users/me/profile-pic
type UserModule struct {
	Handler  *handlers.UserHandler
	Identity gin.HandlerFunc
	Redis    *redis.Client
}

func NewUserModule(h *handlers.UserHandler, identity gin.HandlerFunc, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Identity: identity, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, 20, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	users := rg.Group("/users")
	users.POST("/register", registerLimiter, m.Handler.Register)
	users.POST("/login", loginLimiter, m.Handler.Login)

	me := users.Group("/me")
	me.Use(m.Identity)
	{
		me.GET("", m.Handler.GetProfile)
		me.PUT("", m.Handler.UpdateProfile)
		me.POST("/profile-pic", middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByUserID(), nil), m.Handler.UploadProfilePic)
	}
}
