package customer

import (
	"github.com/gin-gonic/gin"

	"villagemart/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/customers")
	{
		g.POST("/register", h.Register)
		g.POST("/login", h.Login)
		g.PUT("/profile", auth, middleware.RequireRole(roleName), h.UpdateProfile)
	}
}
