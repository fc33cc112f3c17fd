// Package app assembles the process variants: HTTP API, outbox worker,
// event consumer, and job scheduler. All wiring lives here so the cmd mains
// stay trivial.
package app

import (
	"os"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/middleware"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and registers every module's routes.
func BuildApp(router *gin.Engine) error {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	cfg := bootstrap.LoadAppConfig()

	router.Use(middleware.RequestID())
	router.Use(bootstrap.SecureRedirect(cfg))
	router.Use(middleware.ContextLogger(logger))

	return registerModules(router, cfg, sqlDB, gormDB, rdb)
}
