package reservation

import (
	"errors"
	"net/http"

	"busbooking/internal/modules/payment"
	"busbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCustomerRoutes mounts the purchase endpoint behind a customer
// session.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.POST("/purchase", h.Purchase)
}

func (h *Handler) Purchase(c *gin.Context) {
	customerID := c.GetInt64("owner_id")

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if req.SeatNo <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Seat number must be positive")
		return
	}

	result, err := h.service.Purchase(c.Request.Context(), customerID, req.ExpeditionID, req.SeatNo, req.CardID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, result.Message, gin.H{"ticket": result.Ticket})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrExpeditionNotFound):
		response.Error(c, http.StatusNotFound, "EXPEDITION_NOT_FOUND", "No such expedition")
	case errors.Is(err, ErrSeatNotFound):
		response.Error(c, http.StatusNotFound, "SEAT_NOT_FOUND", "No such seat on this expedition")
	case errors.Is(err, ErrExpeditionNotValid):
		response.Error(c, http.StatusConflict, "EXPEDITION_NOT_VALID", "This expedition cannot be booked")
	case errors.Is(err, ErrTimeElapsed):
		response.Error(c, http.StatusConflict, "TIME_ELAPSED", "This expedition has already departed")
	case errors.Is(err, ErrExpeditionFull):
		response.Error(c, http.StatusConflict, "EXPEDITION_FULL", "This expedition is fully booked")
	case errors.Is(err, ErrSeatTaken):
		response.Error(c, http.StatusConflict, "SEAT_TAKEN", "This seat is already booked")
	case errors.Is(err, payment.ErrCardNotFound):
		response.Error(c, http.StatusNotFound, "CARD_NOT_FOUND", "No such card")
	case errors.Is(err, payment.ErrCardNotOwned):
		response.Error(c, http.StatusForbidden, "CARD_NOT_OWNED", "Card belongs to another customer")
	case errors.Is(err, payment.ErrCardInactive):
		response.Error(c, http.StatusConflict, "CARD_INACTIVE", "Card is deactivated")
	case errors.Is(err, payment.ErrInvalidAmount):
		response.Error(c, http.StatusBadRequest, "INVALID_AMOUNT", "Charge amount is invalid")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Purchase failed")
	}
}
