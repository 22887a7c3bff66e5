package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/application"
	"github.com/oksasatya/happnhere-api/internal/interface/middleware"
	"github.com/oksasatya/happnhere-api/pkg/response"
	"github.com/oksasatya/happnhere-api/pkg/validation"
)

type EventHandler struct {
	Svc    *application.EventService
	Logger *logrus.Logger
}

func NewEventHandler(svc *application.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Logger: logger}
}

type createEventRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    *string `json:"category" binding:"required"`
	Location    *string `json:"location" binding:"required"`
	DateTime    *string `json:"date_time" binding:"required"`
	Price       float64 `json:"price"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, events, "events", nil)
}

// Search: GET /events/search?q=goa&size=10
func (h *EventHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	events, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, events, "events", map[string]any{"q": q, "count": len(events)})
}

func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), application.CreateEventInput{
		Title:       *req.Title,
		Description: req.Description,
		Category:    *req.Category,
		Location:    *req.Location,
		DateTime:    *req.DateTime,
		Price:       req.Price,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"event_id": e.ID}, "Event created successfully", nil)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, h.Logger, application.ErrEventNotFound)
		return
	}
	e, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "event", nil)
}

// Update merges an arbitrary JSON object into the event.
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, h.Logger, application.ErrEventNotFound)
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "Event updated successfully", nil)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, h.Logger, application.ErrEventNotFound)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Event deleted successfully", nil)
}

func (h *EventHandler) Join(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, h.Logger, application.ErrEventNotFound)
		return
	}
	e, err := h.Svc.Join(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event_id": e.ID, "attendees": e.Attendees}, "Successfully joined the event", nil)
}
