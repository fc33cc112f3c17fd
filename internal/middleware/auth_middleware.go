package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/authctx"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Guard names carried in the token's "guard" claim. A token minted for one
// guard never authenticates the other.
const (
	GuardWeb      = "web"      // restaurant owner
	GuardEmployee = "employee" // staff member
)

const (
	ownerCookie    = "owner_token"
	employeeCookie = "employee_token"
)

func tokenFromRequest(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found && token != "" {
		return token
	}

	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// parseGuardToken validates the JWT and returns the identity iff the token
// was minted for the wanted guard.
func parseGuardToken(tokenString, wantGuard string) (*authctx.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	guard, _ := claims["guard"].(string)
	if guard != wantGuard {
		return nil, fmt.Errorf("token guard mismatch")
	}

	sub, _ := claims["sub"].(string)
	restaurantID, _ := claims["restaurant_id"].(string)
	if sub == "" || restaurantID == "" {
		return nil, fmt.Errorf("token missing identity claims")
	}

	ident := &authctx.Identity{ID: sub, RestaurantID: restaurantID}
	if roleID, ok := claims["role_id"].(float64); ok {
		if r, ok := role.FromID(int(roleID)); ok {
			ident.Role = r
		}
	}

	return ident, nil
}

// OwnerAuth is the "admin.auth" alias: requires an owner ("web" guard) token.
func OwnerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c, ownerCookie)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		ident, err := parseGuardToken(tokenString, GuardWeb)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", err.Error(), nil)
			c.Abort()
			return
		}

		authctx.Store(c, authctx.Resolve(ident, nil))
		c.Set("user_id", ident.ID)
		c.Set("restaurant_id", ident.RestaurantID)
		c.Next()
	}
}

// EmployeeAuth is the "employee.auth" alias: requires an employee token.
func EmployeeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c, employeeCookie)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		ident, err := parseGuardToken(tokenString, GuardEmployee)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", err.Error(), nil)
			c.Abort()
			return
		}

		authctx.Store(c, authctx.Resolve(nil, ident))
		c.Set("user_id", ident.ID)
		c.Set("restaurant_id", ident.RestaurantID)
		c.Next()
	}
}

// ResolveAuthContext tries both guards without aborting. Routes that behave
// differently per guard (profile update) use this; an unauthenticated request
// proceeds with an anonymous context.
func ResolveAuthContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ownerIdent, employeeIdent *authctx.Identity

		if token := tokenFromRequest(c, ownerCookie); token != "" {
			if ident, err := parseGuardToken(token, GuardWeb); err == nil {
				ownerIdent = ident
			}
		}
		if token := tokenFromRequest(c, employeeCookie); token != "" {
			if ident, err := parseGuardToken(token, GuardEmployee); err == nil {
				employeeIdent = ident
			}
		}

		ac := authctx.Resolve(ownerIdent, employeeIdent)
		authctx.Store(c, ac)
		if id := ac.ActorID(); id != "" {
			c.Set("user_id", id)
			c.Set("restaurant_id", ac.RestaurantID())
		}
		c.Next()
	}
}
