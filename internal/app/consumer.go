package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/events"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/connection"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/verification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer listens for user_registered events and issues verification
// tokens until signalled.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer rdb.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.UserRegisteredTopic,
		GroupID:        "resto-verification",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	tokenStore := verification.NewRedisTokenStore(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go verification.ConsumeUserRegistered(ctx, reader, tokenStore, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
