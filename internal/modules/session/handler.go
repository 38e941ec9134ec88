package session

import (
	"net/http"

	"busbooking/internal/domain"
	"busbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service       *Service
	customerCreds CredentialReader
	companyCreds  CredentialReader
}

func NewHandler(service *Service, customerCreds, companyCreds CredentialReader) *Handler {
	return &Handler{
		service:       service,
		customerCreds: customerCreds,
		companyCreds:  companyCreds,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/customer/login", h.loginWith(domain.SessionCustomer))
	rg.POST("/sessions/company/login", h.loginWith(domain.SessionCompany))
	rg.POST("/sessions/customer/logout", h.logoutWith(domain.SessionCustomer))
	rg.POST("/sessions/company/logout", h.logoutWith(domain.SessionCompany))
	rg.POST("/sessions/customer/check", h.checkWith(domain.SessionCustomer))
	rg.POST("/sessions/company/check", h.checkWith(domain.SessionCompany))
}

func (h *Handler) loginWith(d domain.SessionDomain) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}

		creds := h.customerCreds
		if d == domain.SessionCompany {
			creds = h.companyCreds
		}

		sess, err := h.service.Login(c.Request.Context(), d, creds, req.Email, req.Password)
		if err != nil {
			if err == ErrInvalidCredentials {
				response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
				return
			}
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
			return
		}

		response.Success(c, http.StatusOK, gin.H{
			"owner_id":   sess.OwnerID,
			"code":       sess.Code,
			"expires_at": sess.ExpiresAt,
		})
	}
}

func (h *Handler) logoutWith(d domain.SessionDomain) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LogoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}

		if err := h.service.Logout(c.Request.Context(), d, req.OwnerID, req.Code); err != nil {
			if err == ErrSessionNotFound {
				response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "No such session")
				return
			}
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Logout failed")
			return
		}

		response.Success(c, http.StatusOK, gin.H{"logged_out": true})
	}
}

func (h *Handler) checkWith(d domain.SessionDomain) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}

		status, err := h.service.Check(c.Request.Context(), d, req.OwnerID, req.Code)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Check failed")
			return
		}

		response.Success(c, http.StatusOK, gin.H{"status": status})
	}
}
