package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RayBDev/devconnector/internal/validation"
)

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// AppError is the service-level error carrier. Errors with Fields set
// render as a bare field-keyed object, matching the client contract for
// validation and lookup failures; the rest render as the error envelope.
type AppError struct {
	Status  int
	Code    string
	Message string
	Fields  validation.FieldErrors
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

func NewFieldError(status int, fields validation.FieldErrors) *AppError {
	return &AppError{Status: status, Code: "VALIDATION_ERROR", Message: "invalid request", Fields: fields}
}

func NewSingleFieldError(status int, field, message string) *AppError {
	return NewFieldError(status, validation.FieldErrors{field: message})
}

func RespondError(c *gin.Context, err error) {
	appErr, ok := err.(*AppError)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		}})
		return
	}

	if appErr.Fields != nil {
		c.JSON(appErr.Status, appErr.Fields)
		return
	}

	c.JSON(appErr.Status, ErrorResponse{Error: ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
	}})
}

func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}
