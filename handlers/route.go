package handlers

import (
	"errors"
	"net/http"

	"roadmate/models"
	"roadmate/services/route"
	"roadmate/utils"

	"github.com/gin-gonic/gin"
)

// RouteHandler exposes the transit route search endpoint.
type RouteHandler struct {
	Service route.Service
}

func NewRouteHandler(svc route.Service) *RouteHandler {
	return &RouteHandler{Service: svc}
}

// SearchRoute searches, ranks and returns the best transit route. The user
// id for feedback-weight lookup comes from the X-User-ID header and falls
// back to the session id.
func (h *RouteHandler) SearchRoute(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = req.SessionID
	}

	resp, err := h.Service.SearchRoute(c.Request.Context(), userID, req)
	if err != nil {
		var routeErr *route.RouteError
		if errors.As(err, &routeErr) {
			status := http.StatusBadRequest
			if routeErr.Code == "ROUTE_PROVIDER_ERROR" {
				status = http.StatusBadGateway
			}
			utils.JSONError(c, status, routeErr.Message, routeErr.Code)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "route search failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}
