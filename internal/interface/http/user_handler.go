package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/application"
	"github.com/oksasatya/happnhere-api/internal/interface/middleware"
	"github.com/oksasatya/happnhere-api/pkg/helpers"
	"github.com/oksasatya/happnhere-api/pkg/response"
	"github.com/oksasatya/happnhere-api/pkg/validation"
)

const maxProfilePicBytes = 5 << 20

type UserHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cookies *helpers.Manager) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

// Pointer fields: a key that is present with an empty value still counts.
type registerRequest struct {
	Name     *string `json:"name" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Phone    string  `json:"phone"`
	Password *string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name       *string  `json:"name"`
	ProfilePic *string  `json:"profile_pic"`
	Interests  []string `json:"interests"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     *req.Name,
		Email:    *req.Email,
		Phone:    req.Phone,
		Password: *req.Password,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user_id": u.ID}, "User registered successfully", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		response.Error[any](c, http.StatusBadRequest, "Email and password are required", nil)
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	h.Cookies.SetAccessToken(c, res.Token, res.ExpiresAt)
	var meta any
	if !res.ExpiresAt.IsZero() {
		meta = gin.H{"expires_at": res.ExpiresAt}
	}
	response.Success(c, http.StatusOK, gin.H{"token": res.Token}, "login successful", meta)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	if _, err := h.Svc.GetProfile(c.Request.Context(), middleware.UserID(c)); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.UpdateProfileInput{Name: req.Name, ProfilePic: req.ProfilePic}
	if req.Interests != nil {
		in.Interests, in.SetInterests = req.Interests, true
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "Profile updated successfully", nil)
}

// UploadProfilePic accepts a multipart "file" field holding an image.
func (h *UserHandler) UploadProfilePic(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "is required"})
		return
	}
	if fh.Size > maxProfilePicBytes {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "must be at most 5MB"})
		return
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "must be an image"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadProfilePic(c.Request.Context(), middleware.UserID(c), f, fh.Filename, ct)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile_pic": url}, "profile picture updated", nil)
}
