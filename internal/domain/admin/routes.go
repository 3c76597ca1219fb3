package admin

import (
	"github.com/gin-gonic/gin"

	"villagemart/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/admin")
	{
		g.POST("/login", h.Login)

		protected := g.Group("")
		protected.Use(auth, middleware.RequireRole(roleName))
		{
			protected.GET("/shopkeepers/pending", h.ListPending)
			protected.GET("/shopkeepers/all", h.ListAll)
			protected.PUT("/shopkeepers/:id/approve", h.Approve)
			protected.PUT("/shopkeepers/:id/reject", h.Reject)
		}
	}
}
