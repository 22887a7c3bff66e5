package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/happnhere-api/internal/application"
	"github.com/oksasatya/happnhere-api/internal/interface/middleware"
	"github.com/oksasatya/happnhere-api/pkg/response"
)

type NotificationHandler struct {
	Svc *application.NotificationService
}

func NewNotificationHandler(svc *application.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.List(c.Request.Context(), middleware.UserID(c)), "notifications", nil)
}
