package profile

import (
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the profile endpoint behind the non-aborting guard
// resolver: anonymous requests still reach the handler so validation can run
// before the identity check.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.PUT("/profile", middleware.ResolveAuthContext(), handler.Update)
}
