package menuplan

import (
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts menu-plan endpoints behind the employee guard.
// Waiters land on the planning view after login, so reads admit every staff
// role; mutations stay with dashboard roles.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, aliases bootstrap.MiddlewareAliases) {
	plans := r.Group("/menu-plans", aliases.Must("employee.auth"))
	{
		plans.GET("", handler.GetCurrent)
		plans.GET("/:id", handler.GetByID)
		plans.POST("", aliases.Must("role"), handler.Create)
	}
}
