package trip

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/records-api/internal/service/trip"
	"github.com/jwalitptl/records-api/pkg/httputil"
)

type Handler struct {
	service trip.TripService
}

func NewHandler(service trip.TripService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/trips", h.ListTrips)
}

func (h *Handler) ListTrips(c *gin.Context) {
	trips, err := h.service.ListTrips(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}
