package verification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/events"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/verification"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/verification/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader serves a fixed queue of messages, then cancels the consumer's
// context so the loop exits.
type fakeReader struct {
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
	commitErr error
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, context.Canceled
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	if r.commitErr != nil {
		return r.commitErr
	}
	r.committed = append(r.committed, msgs...)
	return nil
}

func registeredMessage(t *testing.T, userID string) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(events.UserRegisteredEvent{
		EventType: "user_registered",
		UserID:    userID,
		Email:     userID + "@resto.test",
	})
	require.NoError(t, err)
	return kafkago.Message{Topic: events.UserRegisteredTopic, Value: payload}
}

func runConsumer(t *testing.T, reader *fakeReader, store verification.TokenStore) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	reader.cancel = cancel
	verification.ConsumeUserRegistered(ctx, reader, store, zap.NewNop())
}

func TestConsume_FreshTokenCommitsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockTokenStore(ctrl)
	store.EXPECT().Issue(gomock.Any(), "user-1").Return("tok-1", true, nil)

	reader := &fakeReader{queue: []kafkago.Message{registeredMessage(t, "user-1")}}
	runConsumer(t, reader, store)

	assert.Len(t, reader.committed, 1)
}

func TestConsume_MalformedPayloadCommittedAndSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Issue expectation: garbage never reaches the store.
	store := mock.NewMockTokenStore(ctrl)

	reader := &fakeReader{queue: []kafkago.Message{{Value: []byte("not json")}}}
	runConsumer(t, reader, store)

	assert.Len(t, reader.committed, 1)
}

func TestConsume_StoreErrorLeavesMessageUncommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockTokenStore(ctrl)
	store.EXPECT().Issue(gomock.Any(), "user-1").Return("", false, errors.New("redis down"))

	reader := &fakeReader{queue: []kafkago.Message{registeredMessage(t, "user-1")}}
	runConsumer(t, reader, store)

	assert.Empty(t, reader.committed)
}

func TestConsume_DuplicateDeliveryCommitsWithoutNewToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockTokenStore(ctrl)
	store.EXPECT().Issue(gomock.Any(), "user-1").Return("tok-1", false, nil)

	reader := &fakeReader{queue: []kafkago.Message{registeredMessage(t, "user-1")}}
	runConsumer(t, reader, store)

	assert.Len(t, reader.committed, 1)
}
