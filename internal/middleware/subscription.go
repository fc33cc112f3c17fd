package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/authctx"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// SubscriptionSource looks up the owner's current subscription state.
type SubscriptionSource interface {
	Subscription(ctx context.Context, ownerID string) (status string, until *time.Time, err error)
}

func subscriptionState(c *gin.Context, src SubscriptionSource) (string, bool) {
	ac := authctx.FromGin(c)
	if !ac.IsOwner() {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Subscription checks apply to owner accounts", nil)
		c.Abort()
		return "", false
	}

	status, until, err := src.Subscription(c.Request.Context(), ac.ActorID())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not resolve subscription", nil)
		c.Abort()
		return "", false
	}

	if until != nil && until.Before(time.Now()) {
		return "expired", true
	}
	return status, true
}

// CheckSubscription is the "check.subscription" alias: requires an active
// paid subscription.
func CheckSubscription(src SubscriptionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, ok := subscriptionState(c, src)
		if !ok {
			return
		}

		if status != "active" {
			response.Error(c, http.StatusPaymentRequired, "SUBSCRIPTION_REQUIRED",
				"An active subscription is required", gin.H{"status": status})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CheckDemoSubscription is the "check.demo.subscription" alias: demo or paid
// access both pass.
func CheckDemoSubscription(src SubscriptionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, ok := subscriptionState(c, src)
		if !ok {
			return
		}

		if status != "active" && status != "demo" {
			response.Error(c, http.StatusPaymentRequired, "SUBSCRIPTION_REQUIRED",
				"A demo or active subscription is required", gin.H{"status": status})
			c.Abort()
			return
		}
		c.Next()
	}
}
