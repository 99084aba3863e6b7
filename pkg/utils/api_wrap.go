package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roamly/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every failed request. Details are
// only populated while gin runs in debug mode.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respondWith(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respondWith(c, http.StatusCreated, data, message)
}

func respondWith(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	respondErr(c, code, message, nil)
}

func respondErr(c *gin.Context, code int, message string, cause error) {
	resp := ErrorResponse{
		Error:   message,
		TraceID: traceID(c),
	}
	if cause != nil && gin.IsDebugging() {
		resp.Details = cause.Error()
	}
	c.JSON(code, resp)
}

// HandleServiceError converts service-layer sentinel errors into HTTP
// responses. Everything unrecognized becomes a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		respondErr(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, ErrEmailAlreadyExists):
		respondErr(c, http.StatusBadRequest, "Email already registered", nil)
	case errors.Is(err, ErrUserNotFound):
		respondErr(c, http.StatusNotFound, "User not found", nil)
	case errors.Is(err, ErrTripNotFound):
		respondErr(c, http.StatusNotFound, "Trip not found", nil)
	case errors.Is(err, ErrCityNotFound):
		respondErr(c, http.StatusNotFound, "City not found", nil)
	case errors.Is(err, ErrActivityNotFound):
		respondErr(c, http.StatusNotFound, "Activity not found", nil)
	case errors.Is(err, ErrSelfDeletion):
		respondErr(c, http.StatusBadRequest, "Cannot delete your own account", nil)
	case errors.Is(err, ErrResetTokenInvalid):
		respondErr(c, http.StatusBadRequest, "Invalid or expired reset token", nil)
	case errors.Is(err, ErrSeedDisabled):
		respondErr(c, http.StatusForbidden, "Seeding is disabled in production", nil)
	case errors.Is(err, ErrVersionConflict):
		respondErr(c, http.StatusConflict, "Trip was modified concurrently, retry", nil)
	case errors.Is(err, ErrInvalidPage):
		respondErr(c, http.StatusBadRequest, "Page must be greater than 0", nil)
	case errors.Is(err, ErrInvalidPageSize):
		respondErr(c, http.StatusBadRequest, "Page size must be between 1 and 100", nil)
	case errors.Is(err, ErrDatabaseError):
		logger.L().Error("database error", zap.Error(err), zap.String("trace_id", traceID(c)))
		respondErr(c, http.StatusInternalServerError, "Internal server error", err)
	default:
		logger.L().Error("unknown error", zap.Error(err), zap.String("trace_id", traceID(c)))
		respondErr(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
