package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/application"
	"github.com/oksasatya/happnhere-api/internal/interface/middleware"
	"github.com/oksasatya/happnhere-api/pkg/response"
	"github.com/oksasatya/happnhere-api/pkg/validation"
)

type ClubHandler struct {
	Svc    *application.ClubService
	Logger *logrus.Logger
}

func NewClubHandler(svc *application.ClubService, logger *logrus.Logger) *ClubHandler {
	return &ClubHandler{Svc: svc, Logger: logger}
}

type createClubRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, clubs, "clubs", nil)
}

func (h *ClubHandler) Create(c *gin.Context) {
	var req createClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Club name is required", validation.ToDetails(err))
		return
	}
	club, err := h.Svc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"club_id": club.ID}, "Club created successfully", nil)
}

// Follow is idempotent: following a club twice answers 200 both times.
func (h *ClubHandler) Follow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, h.Logger, application.ErrClubNotFound)
		return
	}
	club, err := h.Svc.Follow(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"club_id": club.ID, "members": club.Members}, "Successfully followed the club", nil)
}
