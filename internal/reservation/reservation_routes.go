package reservation

import (
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, aliases bootstrap.MiddlewareAliases) {
	reservations := r.Group("/reservations", aliases.Must("employee.auth"))
	{
		reservations.GET("", handler.GetAll)
		reservations.GET("/tables", handler.TableAvailability)
		reservations.POST("", aliases.Must("role"), handler.Create)
	}
}
