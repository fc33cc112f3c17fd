package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/menuplan"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/reservation"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/scheduler"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/connection"

	"go.uber.org/zap"
)

// RunScheduler runs the recurring maintenance jobs until signalled.
func RunScheduler() error {
	logger := zap.L().Named("app.scheduler")

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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer rdb.Close()

	menuPlanService := menuplan.NewService(menuplan.NewRepository(gormDB))
	reservationService := reservation.NewService(reservation.NewRepository(gormDB), rdb)

	sched := scheduler.New(logger)
	for _, job := range scheduler.Jobs(menuPlanService, reservationService) {
		if err := sched.Register(job); err != nil {
			return err
		}
	}

	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}
