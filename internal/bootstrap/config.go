package bootstrap

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// MiddlewareAliases maps short route-level names to handlers. The table is
// built once at boot and treated as immutable afterwards.
type MiddlewareAliases map[string]gin.HandlerFunc

// Must returns the aliased handler. A missing alias is a wiring bug, so it
// panics at route-registration time rather than surfacing per request.
func (a MiddlewareAliases) Must(name string) gin.HandlerFunc {
	h, ok := a[name]
	if !ok {
		panic(fmt.Sprintf("bootstrap: unknown middleware alias %q", name))
	}
	return h
}

// BrokerConfig holds the realtime pub/sub broker settings. An empty AppKey
// disables realtime entirely (degrade to off).
type BrokerConfig struct {
	AppKey string
	Secret string
	Host   string
	Port   string
	Scheme string // ws or wss
}

// AppConfig is process-wide boot configuration. Built once in main, passed by
// reference; nothing mutates it after boot.
type AppConfig struct {
	Environment string
	ForceHTTPS  bool
	AppURL      string
	Broker      BrokerConfig
	Aliases     MiddlewareAliases
}

// LoadAppConfig materializes AppConfig from the environment. The alias table
// is attached later by the app registry, once handlers exist.
func LoadAppConfig() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}

	return &AppConfig{
		Environment: env,
		ForceHTTPS:  env == "production",
		AppURL:      os.Getenv("APP_URL"),
		Broker: BrokerConfig{
			AppKey: os.Getenv("BROKER_APP_KEY"),
			Secret: os.Getenv("BROKER_APP_SECRET"),
			Host:   os.Getenv("BROKER_HOST"),
			Port:   os.Getenv("BROKER_PORT"),
			Scheme: os.Getenv("BROKER_SCHEME"),
		},
	}
}

// SecureRedirect forces the https scheme in production. Non-TLS requests get
// a permanent redirect to the same URL over https.
func SecureRedirect(cfg *AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.ForceHTTPS {
			c.Next()
			return
		}

		if c.Request.TLS == nil && c.GetHeader("X-Forwarded-Proto") != "https" {
			target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}

		c.Next()
	}
}

// AbsoluteURL builds an absolute URL for the given path, honouring the
// forced scheme.
func (c *AppConfig) AbsoluteURL(host, path string) string {
	scheme := "http"
	if c.ForceHTTPS {
		scheme = "https"
	}
	return scheme + "://" + host + path
}
