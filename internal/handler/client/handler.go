package client

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/records-api/internal/handler"
	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/service/client"
	"github.com/jwalitptl/records-api/pkg/httputil"
)

const msgRegistered = "Client successfully registered for trip"

type Handler struct {
	service client.ClientService
}

func NewHandler(service client.ClientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clients := r.Group("/clients")
	{
		clients.POST("", h.CreateClient)
		clients.GET("/:id/trips", h.ListClientTrips)
		clients.PUT("/:id/trips/:tripId", h.RegisterForTrip)
		clients.DELETE("/:id/trips/:tripId", h.UnregisterFromTrip)
	}
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req model.CreateClientRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	created, err := h.service.CreateClient(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, fmt.Sprintf("/api/clients/%d", created.ID), model.CreateClientResponse{ID: created.ID})
}

func (h *Handler) ListClientTrips(c *gin.Context) {
	id, ok := httputil.ParamInt(c, "id")
	if !ok {
		return
	}

	trips, err := h.service.ListClientTrips(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *Handler) RegisterForTrip(c *gin.Context) {
	clientID, tripID, ok := pathIDs(c)
	if !ok {
		return
	}

	if _, err := h.service.RegisterForTrip(c.Request.Context(), clientID, tripID); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.String(http.StatusOK, msgRegistered)
}

func (h *Handler) UnregisterFromTrip(c *gin.Context) {
	clientID, tripID, ok := pathIDs(c)
	if !ok {
		return
	}

	if err := h.service.UnregisterFromTrip(c.Request.Context(), clientID, tripID); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathIDs(c *gin.Context) (clientID, tripID int, ok bool) {
	if clientID, ok = httputil.ParamInt(c, "id"); !ok {
		return 0, 0, false
	}
	if tripID, ok = httputil.ParamInt(c, "tripId"); !ok {
		return 0, 0, false
	}
	return clientID, tripID, true
}
