package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruslanbaghirov/eventa-app/internal/helpers"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
	"github.com/ruslanbaghirov/eventa-app/internal/services"
)

func SaveEvent(ss *services.SavedEventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentClaims(c)
		if !ok {
			return
		}

		eventId := helpers.StringTrim(c.Param("id"))

		res, err := ss.SaveEvent(c.Request.Context(), userId, eventId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(res, "Event saved"))
	}
}

func UnsaveEvent(ss *services.SavedEventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentClaims(c)
		if !ok {
			return
		}

		eventId := helpers.StringTrim(c.Param("id"))

		if err := ss.UnsaveEvent(c.Request.Context(), userId, eventId); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Event removed from saved list"))
	}
}

func GetSavedEvents(ss *services.SavedEventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentClaims(c)
		if !ok {
			return
		}

		res, err := ss.GetSavedEvents(c.Request.Context(), userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(res, ""))
	}
}
