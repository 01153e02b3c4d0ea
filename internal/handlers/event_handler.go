package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ruslanbaghirov/eventa-app/internal/helpers"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
	"github.com/ruslanbaghirov/eventa-app/internal/services"
)

func SubmitEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, venueId, ok := currentClaims(c)
		if !ok {
			return
		}

		if !claims.IsVenue() && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only users with venue role can submit events"))
			return
		}

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		created, err := es.SubmitEvent(c.Request.Context(), &event, venueId, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Event submitted for review"))
	}
}

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offsetInt, limitInt, ok := paginationParams(c)
		if !ok {
			return
		}

		category := c.Query("category")

		events, total, err := es.ListEvents(c.Request.Context(), category, offsetInt, limitInt)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(events, page, limitInt, total))
	}
}

func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		event, err := es.GetEvent(c.Request.Context(), eventId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

func ListMyEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, venueId, ok := currentClaims(c)
		if !ok {
			return
		}

		offsetInt, limitInt, ok := paginationParams(c)
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		events, total, err := es.ListVenueEvents(c.Request.Context(), venueId, offsetInt, limitInt, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(events, page, limitInt, total))
	}
}

func EditEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, callerId, ok := currentClaims(c)
		if !ok {
			return
		}

		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		var updates map[string]interface{}
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		updated, err := es.EditEvent(c.Request.Context(), eventId, callerId, claims.IsAdmin(), updates, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Event updated successfully"))
	}
}

func RequestCancellation(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, callerId, ok := currentClaims(c)
		if !ok {
			return
		}

		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		var reqBody struct {
			Reason string `json:"reason" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("cancellation reason is required"))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		event, err := es.RequestCancellation(c.Request.Context(), eventId, callerId, reqBody.Reason, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, "Cancellation request submitted"))
	}
}

func GetEventCounts(rs *services.RSVPService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		counts, err := rs.GetEventCounts(c.Request.Context(), eventId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(counts, ""))
	}
}

func ListEventAttendees(rs *services.RSVPService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, callerId, ok := currentClaims(c)
		if !ok {
			return
		}

		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		rsvps, err := rs.ListEventAttendees(c.Request.Context(), eventId, callerId, claims.IsAdmin(), accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(rsvps, ""))
	}
}

func eventIdParam(c *gin.Context) (uuid.UUID, bool) {
	raw := helpers.StringTrim(c.Param("id"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("event ID is required"))
		return uuid.Nil, false
	}

	eventId, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid event ID format"))
		return uuid.Nil, false
	}

	return eventId, true
}

func paginationParams(c *gin.Context) (int, int, bool) {
	limit := c.DefaultQuery("limit", "10")
	offset := c.DefaultQuery("offset", "0")

	limitInt, err := strconv.Atoi(limit)
	if err != nil || limitInt <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offsetInt, err := strconv.Atoi(offset)
	if err != nil || offsetInt < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}

	return offsetInt, limitInt, true
}
