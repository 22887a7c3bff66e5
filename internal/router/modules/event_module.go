package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/happnhere-api/internal/interface/http"
)

type EventModule struct {
	Handler  *handlers.EventHandler
	Identity gin.HandlerFunc
}

func NewEventModule(h *handlers.EventHandler, identity gin.HandlerFunc) *EventModule {
	return &EventModule{Handler: h, Identity: identity}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	events.Use(m.Identity)
	{
		events.GET("", m.Handler.List)
		events.POST("", m.Handler.Create)
		events.GET("/search", m.Handler.Search)
		events.GET("/:id", m.Handler.Get)
		events.PUT("/:id", m.Handler.Update)
		events.DELETE("/:id", m.Handler.Delete)
		events.POST("/:id/join", m.Handler.Join)
	}
}
