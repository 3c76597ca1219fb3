package product

import (
	"github.com/gin-gonic/gin"

	"villagemart/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/products")
	{
		g.GET("", h.List)
		g.GET("/compare", h.Compare)
		g.GET("/:id", h.Get)

		sellerOnly := g.Group("")
		sellerOnly.Use(auth, middleware.RequireRole("shopkeeper"))
		{
			sellerOnly.POST("/add", h.Add)
			sellerOnly.GET("/mine", h.Mine)
			sellerOnly.PUT("/:id", h.Update)
			sellerOnly.DELETE("/:id", h.Delete)
		}
	}
}
