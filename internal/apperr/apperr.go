// Package apperr defines the error kinds every store and service returns and
// their mapping to HTTP status codes. Handlers wrap nothing themselves; they
// pass whatever comes back from the domain layer to Abort.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("unauthorized")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// Status maps an error to its HTTP status code. Conflicts map to 400 like the
// other client faults; unknown errors are treated as storage failures.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing message. Internal failures are not echoed
// verbatim to the client.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

// Abort writes the JSON error envelope and stops the handler chain.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(Status(err), gin.H{"message": Message(err)})
}
