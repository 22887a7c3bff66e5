package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/happnhere-api/internal/interface/http"
)

type NotificationModule struct {
	Handler  *handlers.NotificationHandler
	Identity gin.HandlerFunc
}

func NewNotificationModule(h *handlers.NotificationHandler, identity gin.HandlerFunc) *NotificationModule {
	return &NotificationModule{Handler: h, Identity: identity}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	rg.GET("/notifications", m.Identity, m.Handler.List)
}
