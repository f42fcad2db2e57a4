package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope codes carried in the response body. They follow the service's
// own vocabulary rather than raw HTTP: 300 marks a validation rejection.
const (
	CodeSuccess    = 200
	CodeCreated    = 201
	CodeValidation = 300
	CodeNotFound   = 404
	CodeStoreError = 500
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    CodeSuccess,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    CodeCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, httpStatus, code int, message string) {
	c.JSON(httpStatus, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError converts a service sentinel error into the envelope.
// Validation failures keep envelope code 300 but travel as HTTP 400;
// not-found and not-owned are deliberately the same 404.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPlanIDRequired),
		errors.Is(err, ErrNoUpdateFields),
		errors.Is(err, ErrMissingPlanFields),
		errors.Is(err, ErrInvalidDayOfWeek),
		errors.Is(err, ErrInvalidClockTime),
		errors.Is(err, ErrNoValidPlans):
		RespondError(c, http.StatusBadRequest, CodeValidation, err.Error())

	case errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, CodeNotFound, err.Error())

	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, http.StatusConflict, err.Error())

	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, CodeStoreError, err.Error())

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, CodeStoreError, "Internal server error")
	}
}
