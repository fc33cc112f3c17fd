package verification

import (
	"context"
	"encoding/json"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the slice of kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeUserRegistered issues verification tokens for registered users.
// Malformed payloads are committed and skipped; store errors leave the
// message uncommitted so the broker redelivers.
func ConsumeUserRegistered(
	ctx context.Context,
	reader MessageReader,
	store TokenStore,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.user_registered")
	log.Info("user registered consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("user registered consumer stopped")
				return
			}
			log.Error("fetch user_registered message failed", zap.Error(err))
			continue
		}

		var event events.UserRegisteredEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode user_registered event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		token, fresh, err := store.Issue(ctx, event.UserID)
		if err != nil {
			log.Error("issue verification token failed",
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
			continue
		}

		if !fresh {
			log.Warn("verification token already issued, skipping",
				zap.String("user_id", event.UserID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit user_registered message failed", zap.Error(err))
			continue
		}

		// The mailer watches the token keyspace; the log line is the audit
		// trail for the dispatch itself.
		log.Info("verification email dispatched",
			zap.String("user_id", event.UserID),
			zap.String("email", event.Email),
			zap.String("token", token),
		)
	}
}
