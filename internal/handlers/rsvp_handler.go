package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
	"github.com/ruslanbaghirov/eventa-app/internal/services"
)

// SetRSVP handles the interested/going buttons. The same endpoint serves
// create, type change and toggle-off; the response tells the frontend which
// one happened so it can phrase the toast.
func SetRSVP(rs *services.RSVPService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentClaims(c)
		if !ok {
			return
		}

		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}

		var reqBody struct {
			Type string `json:"rsvp_type" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("rsvp_type is required"))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		result, err := rs.SetRSVP(c.Request.Context(), userId, eventId, models.RSVPType(reqBody.Type), accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		var message string
		switch result.Outcome {
		case models.RSVPOutcomeCreated:
			message = "RSVP recorded"
		case models.RSVPOutcomeChanged:
			message = "RSVP updated"
		case models.RSVPOutcomeRemoved:
			message = "RSVP removed"
		}

		c.JSON(http.StatusOK, models.SuccessResponse(result, message))
	}
}

func ListMyRSVPs(rs *services.RSVPService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentClaims(c)
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		rsvps, err := rs.ListUserRSVPs(c.Request.Context(), userId, accessToken)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(rsvps, ""))
	}
}
