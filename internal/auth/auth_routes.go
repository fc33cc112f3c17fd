package auth

import (
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.LoginOwner)
		auth.POST("/employee/login", middleware.RateLimitByIP(0.08, 5), handler.LoginEmployee)
		auth.POST("/logout", handler.Logout)
	}
}
