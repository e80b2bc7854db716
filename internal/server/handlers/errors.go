package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
)

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Bad Request",
		"message": message,
	})
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"error":   "Forbidden",
		"message": "You do not have access to this resource",
	})
}

// respondError maps domain errors to statuses. Anything unclassified is
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, logger zerolog.Logger, err error) {
	var conflict *domain.ConflictError
	var validation *domain.ValidationError
	var dependency *domain.DependencyError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": validation.Error(),
			"field":   validation.Field,
		})
	case domain.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Forbidden",
			"message": err.Error(),
		})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": err.Error(),
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":                "Conflict",
			"message":              conflict.Message,
			"conflicting_bookings": conflictIDs(conflict),
			"blocked_ranges":       blockedIDs(conflict),
		})
	case errors.As(err, &dependency):
		logger.Warn().Ctx(c.Request.Context()).Err(err).Str("path", c.Request.URL.Path).Msg("Dependency unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Service Unavailable",
			"message": dependency.Dependency + " is unavailable, retry later",
		})
	default:
		logger.Error().Ctx(c.Request.Context()).Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
		})
	}
}

func conflictIDs(err *domain.ConflictError) []string {
	ids := make([]string, 0, len(err.Reservations))
	for _, r := range err.Reservations {
		ids = append(ids, r.ID)
	}
	return ids
}

func blockedIDs(err *domain.ConflictError) []string {
	ids := make([]string, 0, len(err.Blocked))
	for _, b := range err.Blocked {
		ids = append(ids, b.ID)
	}
	return ids
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, domain.NewValidationError(field, "is required")
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be YYYY-MM-DD or RFC 3339")
	}
	return t, nil
}
