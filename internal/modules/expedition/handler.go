package expedition

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

// RegisterPublicRoutes mounts the unauthenticated read projections.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/expeditions", h.Search)
	rg.GET("/expeditions/upcoming", h.Upcoming)
	rg.GET("/expeditions/:id", h.GetByID)
}

// RegisterCompanyRoutes mounts the endpoints behind a company session.
func (h *Handler) RegisterCompanyRoutes(rg *gin.RouterGroup) {
	rg.POST("/expeditions", h.Create)
	rg.GET("/company/expeditions", h.ByCompany)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateExpeditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	companyID := c.GetInt64("owner_id")
	e, err := h.service.Create(c.Request.Context(), companyID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid expedition parameters")
		case ErrUnknownCity:
			response.Error(c, http.StatusBadRequest, "UNKNOWN_CITY", "Departure or arrival city is not known")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create expedition")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"expedition": e})
}

func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from, to and date are required")
		return
	}

	list, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
		case ErrUnknownCity:
			response.Error(c, http.StatusBadRequest, "UNKNOWN_CITY", "Unknown city")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"expeditions": list})
}

func (h *Handler) Upcoming(c *gin.Context) {
	list, err := h.service.Upcoming(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list expeditions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"expeditions": list})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid expedition id")
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "EXPEDITION_NOT_FOUND", "No such expedition")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load expedition")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"expedition": e})
}

func (h *Handler) ByCompany(c *gin.Context) {
	companyID := c.GetInt64("owner_id")

	if date := c.Query("date"); date != "" {
		list, err := h.service.ByCompanyAndDate(c.Request.Context(), companyID, date)
		if err != nil {
			if err == ErrValidation {
				response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
				return
			}
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list expeditions")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"expeditions": list})
		return
	}

	list, err := h.service.ByCompany(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list expeditions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"expeditions": list})
}
