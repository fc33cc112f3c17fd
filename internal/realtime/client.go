// Package realtime bootstraps the websocket connection to the broadcast
// broker and authorizes private-channel subscriptions. A deployment without
// broker credentials runs with realtime off; nothing else degrades.
package realtime

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const handshakeTimeout = 10 * time.Second

type Client struct {
	url    string
	logger *zap.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

// New builds the broker client. When no app key is configured it returns
// (nil, false) after an informational log; callers treat that as "realtime
// off", never as an error.
func New(cfg bootstrap.BrokerConfig, logger *zap.Logger) (*Client, bool) {
	log := logger.Named("realtime")

	if cfg.AppKey == "" {
		log.Info("realtime disabled, no broker app key configured")
		return nil, false
	}

	scheme := cfg.Scheme
	if scheme != "wss" {
		scheme = "ws"
	}

	u := url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:   "/app/" + cfg.AppKey,
	}

	return &Client{url: u.String(), logger: log}, true
}

// URL exposes the dial target for logging and tests.
func (c *Client) URL() string {
	return c.url
}

func (c *Client) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}

	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.logger.Info("broker connection established", zap.String("url", c.url))
	return nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}
