package notification

import (
	"github.com/gin-gonic/gin"

	"villagemart/internal/middleware"
)

// RegisterRoutes wires the notification API. All routes require auth;
// subscription management is customer-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/notifications")
	g.Use(auth)
	{
		g.GET("", h.List)
		g.GET("/unread-count", h.UnreadCount)
		g.PATCH("/:id/read", h.MarkRead)
		g.POST("/read-all", h.MarkAllRead)
		g.GET("/ws", h.ServeWS)

		customerOnly := g.Group("")
		customerOnly.Use(middleware.RequireRole(string(RoleCustomer)))
		{
			customerOnly.POST("/subscribe", h.Subscribe)
			customerOnly.DELETE("/subscribe/:productId", h.Unsubscribe)
			customerOnly.GET("/subscription/:productId", h.SubscriptionStatus)
		}
	}
}
