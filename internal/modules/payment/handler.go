package payment

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

// RegisterCustomerRoutes mounts card management behind a customer session.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.GET("/cards", h.Cards)
	rg.POST("/cards/:id/deactivate", h.DeactivateCard)
}

// RegisterInternalRoutes mounts the service-to-service payment lookup
// behind the signed service token.
func (h *Handler) RegisterInternalRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/:id", h.GetPayment)
}

func (h *Handler) Cards(c *gin.Context) {
	customerID := c.GetInt64("owner_id")

	cards, err := h.service.Cards(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list cards")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cards": cards})
}

func (h *Handler) DeactivateCard(c *gin.Context) {
	customerID := c.GetInt64("owner_id")
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid card id")
		return
	}

	if err := h.service.DeactivateCard(c.Request.Context(), customerID, cardID); err != nil {
		switch err {
		case ErrCardNotFound:
			response.Error(c, http.StatusNotFound, "CARD_NOT_FOUND", "No such card")
		case ErrCardNotOwned:
			response.Error(c, http.StatusForbidden, "CARD_NOT_OWNED", "Card belongs to another customer")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to deactivate card")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) GetPayment(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrPaymentNotFound {
			response.Error(c, http.StatusNotFound, "PAYMENT_NOT_FOUND", "No such payment")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}
