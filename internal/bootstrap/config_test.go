package bootstrap_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareAliases_Must(t *testing.T) {
	called := false
	aliases := bootstrap.MiddlewareAliases{
		"admin.auth": func(c *gin.Context) { called = true; c.Next() },
	}

	h := aliases.Must("admin.auth")
	assert.NotNil(t, h)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)
	assert.True(t, called)

	assert.Panics(t, func() {
		aliases.Must("no.such.alias")
	})
}

func TestSecureRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("production forces https", func(t *testing.T) {
		cfg := &bootstrap.AppConfig{Environment: "production", ForceHTTPS: true}

		r := gin.New()
		r.Use(bootstrap.SecureRedirect(cfg))
		r.GET("/menu", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "http://resto.test/menu?tab=1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "https://resto.test/menu?tab=1", w.Header().Get("Location"))
	})

	t.Run("forwarded https passes through", func(t *testing.T) {
		cfg := &bootstrap.AppConfig{Environment: "production", ForceHTTPS: true}

		r := gin.New()
		r.Use(bootstrap.SecureRedirect(cfg))
		r.GET("/menu", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "http://resto.test/menu", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("local environment untouched", func(t *testing.T) {
		cfg := &bootstrap.AppConfig{Environment: "local", ForceHTTPS: false}

		r := gin.New()
		r.Use(bootstrap.SecureRedirect(cfg))
		r.GET("/menu", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://localhost/menu", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAppConfig_AbsoluteURL(t *testing.T) {
	prod := &bootstrap.AppConfig{ForceHTTPS: true}
	assert.Equal(t, "https://resto.test/dashboard", prod.AbsoluteURL("resto.test", "/dashboard"))

	local := &bootstrap.AppConfig{ForceHTTPS: false}
	assert.Equal(t, "http://localhost:3000/dashboard", local.AbsoluteURL("localhost:3000", "/dashboard"))
}
