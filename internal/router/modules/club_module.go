package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/happnhere-api/internal/interface/http"
)

type ClubModule struct {
	Handler  *handlers.ClubHandler
	Identity gin.HandlerFunc
}

func NewClubModule(h *handlers.ClubHandler, identity gin.HandlerFunc) *ClubModule {
	return &ClubModule{Handler: h, Identity: identity}
}

func (m *ClubModule) Register(rg *gin.RouterGroup) {
	clubs := rg.Group("/clubs")
	clubs.Use(m.Identity)
	{
		clubs.GET("", m.Handler.List)
		clubs.POST("", m.Handler.Create)
		clubs.POST("/:id/follow", m.Handler.Follow)
	}
}
