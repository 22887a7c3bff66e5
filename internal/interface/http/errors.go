package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/application"
	"github.com/oksasatya/happnhere-api/internal/interface/middleware"
	"github.com/oksasatya/happnhere-api/pkg/response"
	"github.com/oksasatya/happnhere-api/pkg/validation"
)

// respondBindError answers a failed bind with 400. Absent required keys get
// "Missing required fields"; malformed or mistyped bodies get "invalid payload".
func respondBindError(c *gin.Context, err error) {
	msg := "invalid payload"
	if validation.OnlyMissing(err) {
		msg = "Missing required fields"
	}
	response.Error[any](c, http.StatusBadRequest, msg, validation.ToDetails(err))
}

// respondError maps service errors to a status and message and writes the
// error envelope. Anything unrecognised is logged and answered with 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var (
		status = http.StatusInternalServerError
		msg    = "internal error"
		detail any
	)
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		status, msg = http.StatusNotFound, fmt.Sprintf("User with ID %d not found. Please register a user first.", middleware.UserID(c))
	case errors.Is(err, application.ErrEventNotFound):
		status, msg = http.StatusNotFound, "Event not found"
	case errors.Is(err, application.ErrClubNotFound):
		status, msg = http.StatusNotFound, "Club not found"
	case errors.Is(err, application.ErrEmailExists):
		status, msg = http.StatusBadRequest, "Email already exists"
	case errors.Is(err, application.ErrAlreadyJoined):
		status, msg = http.StatusBadRequest, fmt.Sprintf("User %d already joined this event", middleware.UserID(c))
	case errors.Is(err, application.ErrInvalidField):
		status, msg, detail = http.StatusBadRequest, "invalid payload", err.Error()
	case errors.Is(err, application.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, application.ErrInvalidToken):
		status, msg = http.StatusUnauthorized, "invalid access token"
	case errors.Is(err, application.ErrStorageDisabled):
		status, msg = http.StatusServiceUnavailable, "file storage is not configured"
	default:
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
			}).Error("request failed")
		}
	}
	response.Error[any](c, status, msg, detail)
}

// pathID parses the :id path parameter. Non-integer ids never match a
// resource, so callers answer them with their not-found error.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
