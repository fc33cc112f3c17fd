package purchaseorder

import (
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, aliases bootstrap.MiddlewareAliases) {
	// Suppliers land here from email links; no guard on purpose.
	r.GET("/purchase-orders/respond", handler.Respond)

	orders := r.Group("/purchase-orders",
		aliases.Must("employee.auth"),
		aliases.Must("role"),
	)
	{
		orders.GET("", handler.GetAll)
		orders.POST("", handler.Create)
	}
}
