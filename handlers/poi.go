package handlers

import (
	"errors"
	"net/http"

	"roadmate/models"
	"roadmate/services/poi"
	"roadmate/utils"

	"github.com/gin-gonic/gin"
)

// POIHandler exposes the place keyword search endpoint.
type POIHandler struct {
	Service poi.Service
}

func NewPOIHandler(svc poi.Service) *POIHandler {
	return &POIHandler{Service: svc}
}

// SearchPlaces resolves a free-text destination into coordinate candidates.
func (h *POIHandler) SearchPlaces(c *gin.Context) {
	var req models.POISearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	resp, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		var poiErr *poi.POIError
		if errors.As(err, &poiErr) {
			status := http.StatusBadRequest
			if poiErr.Code == "POI_PROVIDER_ERROR" {
				status = http.StatusBadGateway
			}
			utils.JSONError(c, status, poiErr.Message, poiErr.Code)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "place search failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}
