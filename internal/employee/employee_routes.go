package employee

import (
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, aliases bootstrap.MiddlewareAliases) {
	employees := r.Group("/employees",
		aliases.Must("admin.auth"),
		aliases.Must("check.subscription"),
	)
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", handler.Create)
		employees.PATCH("/:id/status", handler.ToggleStatus)
	}
}
