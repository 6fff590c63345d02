package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies an application error so the HTTP boundary can map it
// to exactly one status code.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindAuth              ErrorKind = "auth"
	KindForbidden         ErrorKind = "forbidden"
	KindNotFound          ErrorKind = "notFound"
	KindInvalidTransition ErrorKind = "invalidTransition"
	KindInternal          ErrorKind = "internal"
)

// AppError is a typed error carried from the service layer to the handlers.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NewForbidden(msg string) *AppError {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func NewNotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func NewInvalidTransition(msg string) *AppError {
	return &AppError{Kind: KindInvalidTransition, Message: msg}
}

func NewInternal(msg string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

// HTTPStatus maps an error kind to its HTTP status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONAppError maps a service error to its HTTP response. Unclassified errors
// become opaque 500s so storage failures never leak detail to the caller.
func JSONAppError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.Kind.HTTPStatus()
		if appErr.Kind == KindInternal {
			GetLogger().Error(appErr.Message, zap.Error(appErr.Err))
			c.JSON(status, ErrorResponse{Message: "Internal Server Error"})
			return
		}
		c.JSON(status, ErrorResponse{Message: appErr.Message})
		return
	}
	GetLogger().Error("unclassified error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
}
