package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
	"github.com/ruslanbaghirov/eventa-app/internal/services"
)

// Moderation endpoints. The admin role is enforced by middleware on the route
// group; each handler only performs the single transition.

func ApproveEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		event, err := es.ApproveEvent(c.Request.Context(), eventId, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event approved"))
	}
}

func RejectEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		var reqBody struct {
			Reason string `json:"reason" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("rejection reason is required"))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		event, err := es.RejectEvent(c.Request.Context(), eventId, reqBody.Reason, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event rejected"))
	}
}

func ApproveCancellation(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		event, err := es.ApproveCancellation(c.Request.Context(), eventId, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event cancelled"))
	}
}

func RejectCancellation(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		event, err := es.RejectCancellation(c.Request.Context(), eventId, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, "Cancellation request rejected"))
	}
}

func ListPendingEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offsetInt, limitInt, ok := paginationParams(c)
		if !ok {
			return
		}

		events, total, err := es.ListPendingEvents(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(events, page, limitInt, total))
	}
}

func ListCancellationRequests(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offsetInt, limitInt, ok := paginationParams(c)
		if !ok {
			return
		}

		events, total, err := es.ListCancellationRequests(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(events, page, limitInt, total))
	}
}
