package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"villagemart/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	token, a, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    a.ID,
			"name":  a.Name,
			"email": a.Email,
			"role":  roleName,
		},
	})
}

func (h *Handler) ListPending(c *gin.Context) {
	list, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load pending shopkeepers")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load shopkeepers")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid shopkeeper ID")
		return
	}

	adminID := c.GetInt64("user_id")
	sk, err := h.service.Approve(c.Request.Context(), id, adminID)
	if err != nil {
		if errors.Is(err, ErrShopkeeperNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shopkeeper not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "APPROVE_FAILED", "Failed to approve shopkeeper")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    "Shopkeeper approved successfully",
		"shopkeeper": sk,
	})
}

func (h *Handler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid shopkeeper ID")
		return
	}

	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Reason == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason is required")
		return
	}

	adminID := c.GetInt64("user_id")
	sk, err := h.service.Reject(c.Request.Context(), id, adminID, req.Reason)
	if err != nil {
		if errors.Is(err, ErrShopkeeperNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shopkeeper not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REJECT_FAILED", "Failed to reject shopkeeper")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    "Shopkeeper rejected",
		"shopkeeper": sk,
	})
}
