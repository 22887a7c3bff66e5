package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/happnhere-api/internal/interface/http"
)

// PaymentModule exposes the simulated gateway. Neither route needs an acting user.
type PaymentModule struct {
	Handler *handlers.PaymentHandler
}

func NewPaymentModule(h *handlers.PaymentHandler) *PaymentModule {
	return &PaymentModule{Handler: h}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	rg.POST("/payments", m.Handler.Create)
	rg.GET("/payments/:id/status", m.Handler.Status)
}
