package realtime

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/authctx"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Sign produces the broker signature for one subscription.
func Sign(secret, socketID, channelName string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(socketID + ":" + channelName))
	return hex.EncodeToString(mac.Sum(nil))
}

// AuthHandler serves POST /broadcasting-custom-auth, the endpoint the
// Authorizer calls. Private channels require a resolved identity; public
// channels sign for anyone.
func AuthHandler(cfg bootstrap.BrokerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req authRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.SocketID == "" || req.ChannelName == "" {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "socket_id and channel_name are required", nil)
			return
		}

		if strings.HasPrefix(req.ChannelName, "private-") {
			if authctx.FromGin(c).IsAnonymous() {
				response.Error(c, http.StatusForbidden, "FORBIDDEN", "Private channels require authentication", nil)
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"auth": cfg.AppKey + ":" + Sign(cfg.Secret, req.SocketID, req.ChannelName),
		})
	}
}
