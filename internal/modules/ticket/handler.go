package ticket

import (
	"net/http"
	"strings"

	"busbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCustomerRoutes mounts the ticket lookups behind a customer session.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.GET("/tickets", h.MyTickets)
	rg.GET("/tickets/:pnr", h.Details)
}

func (h *Handler) Details(c *gin.Context) {
	pnr := strings.ToUpper(strings.TrimSpace(c.Param("pnr")))
	if pnr == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "PNR is required")
		return
	}

	d, err := h.service.Details(c.Request.Context(), pnr)
	if err != nil {
		if err == ErrTicketNotFound {
			response.Error(c, http.StatusNotFound, "TICKET_NOT_FOUND", "No ticket with that PNR")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load ticket")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ticket": d})
}

func (h *Handler) MyTickets(c *gin.Context) {
	customerID := c.GetInt64("owner_id")

	tickets, err := h.service.ByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tickets")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tickets": tickets})
}
