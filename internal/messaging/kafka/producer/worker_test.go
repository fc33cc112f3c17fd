package producer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/messaging/kafka"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/messaging/kafka/mock"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func pendingEvent(id, topic string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:          id,
		AggregateID: "agg-" + id,
		EventType:   "user_registered",
		Topic:       topic,
		Payload:     []byte(`{"event":"` + id + `"}`),
		Status:      kafka.OutboxStatusPending,
	}
}

func TestProcessPendingEvents_PublishesAndMarksSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{}

	repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
		pendingEvent("evt-1", "user.registered"),
	}, nil)
	repo.EXPECT().MarkSent(gomock.Any(), "evt-1").Return(nil)

	err := producer.ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())
	assert.NoError(t, err)
	require.Len(t, writer.written, 1)
	assert.Equal(t, "user.registered", writer.written[0].Topic)
	assert.Equal(t, []byte("agg-evt-1"), writer.written[0].Key)
}

func TestProcessPendingEvents_EmptyBatchIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{}

	repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, nil)

	err := producer.ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())
	assert.NoError(t, err)
	assert.Empty(t, writer.written)
}

func TestProcessPendingEvents_PublishFailureMarksFailedAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{err: errors.New("broker unreachable")}

	repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
		pendingEvent("evt-1", "user.registered"),
		pendingEvent("evt-2", "purchase_order.responded"),
	}, nil)
	repo.EXPECT().MarkFailed(gomock.Any(), "evt-1", "broker unreachable").Return(nil)
	repo.EXPECT().MarkFailed(gomock.Any(), "evt-2", "broker unreachable").Return(nil)

	err := producer.ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())
	assert.NoError(t, err)
}

func TestProcessPendingEvents_InvalidRowNeverReachesBroker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{}

	broken := pendingEvent("evt-1", "")
	repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{broken}, nil)
	repo.EXPECT().MarkFailed(gomock.Any(), "evt-1", gomock.Any()).Return(nil)

	err := producer.ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())
	assert.NoError(t, err)
	assert.Empty(t, writer.written)
}

func TestProcessPendingEvents_ListFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, errors.New("db down"))

	err := producer.ProcessPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())
	assert.EqualError(t, err, "db down")
}
