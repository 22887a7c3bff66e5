package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/happnhere-api/internal/application"
	"github.com/oksasatya/happnhere-api/pkg/response"
)

type PaymentHandler struct {
	Svc *application.PaymentService
}

func NewPaymentHandler(svc *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// Create echoes whatever JSON the client sent back as the payment details.
// A missing or malformed body becomes null details.
func (h *PaymentHandler) Create(c *gin.Context) {
	var details any
	if body, err := io.ReadAll(c.Request.Body); err == nil && len(body) > 0 {
		if err := json.Unmarshal(body, &details); err != nil {
			details = nil
		}
	}
	p := h.Svc.Create(c.Request.Context(), details)
	response.Success(c, http.StatusCreated, p, "Payment initiated successfully", nil)
}

func (h *PaymentHandler) Status(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Status(c.Request.Context(), c.Param("id")), "payment status", nil)
}
