package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ruslanbaghirov/eventa-app/internal/helpers"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
)

// statusForError maps the service error classes onto HTTP status codes.
// Unknown errors are treated as retryable store failures.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrEventNotFound), errors.Is(err, models.ErrRSVPNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrCapacityFull),
		errors.Is(err, models.ErrCapacityBelowGoing),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrEventCancelled),
		errors.Is(err, models.ErrEventNotOpen),
		errors.Is(err, models.ErrCancellationPending),
		errors.Is(err, models.ErrNoCancellationPending):
		return http.StatusConflict
	case errors.Is(err, models.ErrReasonRequired), errors.Is(err, models.ErrInvalidRSVPType):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
}

// currentClaims pulls the enhanced claims stored by AuthMiddleware along with
// the caller's parsed user id. A false return has already written the response.
func currentClaims(c *gin.Context) (*helpers.EnhancedClaims, uuid.UUID, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, uuid.Nil, false
	}

	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, uuid.Nil, false
	}

	userId, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
		return nil, uuid.Nil, false
	}

	return claims, userId, true
}
