package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"villagemart/internal/pkg/logger"
	"villagemart/internal/pkg/response"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// Subscribe registers the authenticated customer for restock alerts on
// one product.
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Product ID is required")
		return
	}

	customerID := c.GetInt64("user_id")
	if _, err := h.service.Subscribe(c.Request.Context(), customerID, req.ProductID); err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			response.Error(c, http.StatusBadRequest, "ALREADY_SUBSCRIBED", "Already subscribed to this product")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SUBSCRIBE_FAILED", "Failed to subscribe")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Successfully subscribed to product notifications"})
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid product ID")
		return
	}

	customerID := c.GetInt64("user_id")
	if err := h.service.Unsubscribe(c.Request.Context(), customerID, productID); err != nil {
		response.Error(c, http.StatusInternalServerError, "UNSUBSCRIBE_FAILED", "Failed to unsubscribe")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Successfully unsubscribed"})
}

func (h *Handler) SubscriptionStatus(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid product ID")
		return
	}

	customerID := c.GetInt64("user_id")
	subscribed, err := h.service.IsSubscribed(c.Request.Context(), customerID, productID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to check subscription")
		return
	}

	response.Success(c, http.StatusOK, SubscriptionStatusResponse{Subscribed: subscribed})
}

// List returns the authenticated user's notifications, newest first.
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := Role(c.GetString("role"))

	unreadOnly := c.Query("unread") == "true"

	limit := 50
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	offset := 0
	if s := c.Query("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}

	list, unread, err := h.service.List(c.Request.Context(), userID, role, unreadOnly, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load notifications")
		return
	}

	items := make([]NotificationResponse, len(list))
	for i, n := range list {
		items[i] = toResponse(n)
	}

	response.Success(c, http.StatusOK, NotificationListResponse{
		Notifications: items,
		UnreadCount:   unread,
	})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := Role(c.GetString("role"))

	count, err := h.service.UnreadCount(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get unread count")
		return
	}

	response.Success(c, http.StatusOK, UnreadCountResponse{Count: count})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "read"})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := Role(c.GetString("role"))

	if err := h.service.MarkAllRead(c.Request.Context(), userID, role); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark all as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "all_read"})
}

// ServeWS upgrades the request to a websocket for live notification
// pushes. Auth middleware has already validated the token (passed as a
// query parameter by browser clients).
func (h *Handler) ServeWS(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := Role(c.GetString("role"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.hub.ServeWS(conn, role, userID)
}
