package seat

import (
	"net/http"
	"strconv"

	"busbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCustomerRoutes mounts the traveller-facing seat views.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.GET("/expeditions/:id/seats", h.Available)
}

// RegisterCompanyRoutes mounts the roster view for the owning company.
func (h *Handler) RegisterCompanyRoutes(rg *gin.RouterGroup) {
	rg.GET("/company/expeditions/:id/seats", h.Roster)
}

func (h *Handler) Available(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid expedition id")
		return
	}

	seats, err := h.service.Available(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list seats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seats": seats})
}

func (h *Handler) Roster(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid expedition id")
		return
	}

	roster, err := h.service.Roster(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load roster")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seats": roster})
}
