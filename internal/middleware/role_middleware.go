package middleware

import (
	"net/http"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/authctx"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RoleGate is the "role" alias: the resolved identity's role must be one of
// allowed. Runs after a guard middleware; anonymous contexts are rejected.
func RoleGate(allowed ...role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := authctx.FromGin(c)

		r, ok := ac.Role()
		if !ok {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No staff role resolved for this request", nil)
			c.Abort()
			return
		}

		for _, a := range allowed {
			if r == a {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN",
			"Role "+r.Label()+" may not access this resource", nil)
		c.Abort()
	}
}

// DashboardOnly gates a route to dashboard roles (everyone but waiters).
func DashboardOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := authctx.FromGin(c)

		r, ok := ac.Role()
		if !ok || !r.IsDashboardRole() {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Dashboard access requires a dashboard role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
