package analytics

import (
	"github.com/gin-gonic/gin"

	"villagemart/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/analytics")
	g.Use(auth, middleware.RequireRole("shopkeeper"))
	{
		g.GET("/shopkeeper/:id/overview", h.Overview)
		g.GET("/shopkeeper/:id/revenue-trends", h.RevenueTrends)
		g.GET("/shopkeeper/:id/top-products", h.TopProducts)
	}
}
