package app_error

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrTechniqueNotFound  = errors.New("technique not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrReloadRejected     = errors.New("catalog reload rejected")
	ErrReloadDisabled     = errors.New("catalog reload disabled")
	ErrUnauthorized       = errors.New("unauthorized")
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// New attaches an HTTP status to err.
func New(err error, status int) error {
	return statusError{error: err, status: status}
}

// StatusFor maps an error to the status code a handler should answer with.
func StatusFor(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.status
	}
	switch {
	case errors.Is(err, ErrTechniqueNotFound), errors.Is(err, ErrInstructorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, ErrReloadRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrReloadDisabled):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// Respond writes err with the status derived from StatusFor.
func Respond(c *gin.Context, err error) {
	WithHTTPStatus(c, err, StatusFor(err))
}
