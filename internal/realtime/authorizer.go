package realtime

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const authPath = "/broadcasting-custom-auth"

// AuthCallback receives the outcome of one subscription attempt. errored true
// means deny; payload is only set on success.
type AuthCallback func(errored bool, payload map[string]any)

// Authorizer performs the private-channel handshake against the backend.
// Every attempt terminates in exactly one callback invocation, bounded by the
// HTTP client timeout.
type Authorizer struct {
	baseURL   string
	csrfToken string
	client    *http.Client
	logger    *zap.Logger
}

func NewAuthorizer(baseURL, csrfToken string, logger *zap.Logger) *Authorizer {
	return &Authorizer{
		baseURL:   baseURL,
		csrfToken: csrfToken,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    logger.Named("realtime.authorizer"),
	}
}

type authRequest struct {
	SocketID    string `json:"socket_id"`
	ChannelName string `json:"channel_name"`
}

// Authorize posts the subscription attempt. Any failure, whether network,
// non-2xx status, or an unparseable body, denies the channel.
func (a *Authorizer) Authorize(socketID, channelName string, callback AuthCallback) {
	body, err := json.Marshal(authRequest{SocketID: socketID, ChannelName: channelName})
	if err != nil {
		a.deny(channelName, err, callback)
		return
	}

	req, err := http.NewRequest(http.MethodPost, a.baseURL+authPath, bytes.NewReader(body))
	if err != nil {
		a.deny(channelName, err, callback)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRF-TOKEN", a.csrfToken)

	resp, err := a.client.Do(req)
	if err != nil {
		a.deny(channelName, err, callback)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		a.logger.Warn("channel authorization rejected",
			zap.String("channel", channelName),
			zap.Int("status", resp.StatusCode),
		)
		callback(true, nil)
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		a.deny(channelName, err, callback)
		return
	}

	callback(false, payload)
}

func (a *Authorizer) deny(channel string, err error, callback AuthCallback) {
	a.logger.Warn("channel authorization failed",
		zap.String("channel", channel),
		zap.Error(err),
	)
	callback(true, nil)
}
