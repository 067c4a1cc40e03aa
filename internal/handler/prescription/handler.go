package prescription

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/records-api/internal/handler"
	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/service/prescription"
	"github.com/jwalitptl/records-api/pkg/httputil"
)

type Handler struct {
	service prescription.PrescriptionService
}

func NewHandler(service prescription.PrescriptionService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/prescription", h.CreatePrescription)
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	var req model.CreatePrescriptionRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	created, err := h.service.CreatePrescription(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, fmt.Sprintf("/api/prescription/%d", created.ID), created)
}
