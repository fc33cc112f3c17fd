package registration_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/events"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/messaging/kafka"
	kafkamock "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/messaging/kafka/mock"
	ownermock "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/owner/mock"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/registration"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/registration/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func validRequest() registration.RegisterRequest {
	return registration.RegisterRequest{
		FirstName:            "Ana",
		LastName:             "Reyes",
		Address:              "1 Mabini St",
		Email:                "ana@resto.test",
		PhoneNumber:          "+63-900-000-0001",
		Password:             "longenough",
		PasswordConfirmation: "longenough",
		RestaurantName:       "Casa Ana",
		RestaurantAddress:    "1 Mabini St",
		ContactNo:            "+63-900-000-0002",
	}
}

func TestValidateUniqueness_CollectsEveryViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	ownerRepo := ownermock.NewMockRepository(ctrl)
	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	svc := registration.NewService(db, repo, ownerRepo, outbox, zap.NewNop())

	req := validRequest()
	req.Password = "short"
	req.PasswordConfirmation = "short"

	ownerRepo.EXPECT().EmailTaken(gomock.Any(), req.Email, "").Return(true, nil)
	ownerRepo.EXPECT().AddressTaken(gomock.Any(), req.Address).Return(true, nil)
	ownerRepo.EXPECT().PhoneTaken(gomock.Any(), req.PhoneNumber).Return(false, nil)

	v, err := svc.ValidateUniqueness(context.Background(), req)
	assert.NoError(t, err)

	// One response carries every failing field at once.
	assert.Contains(t, v, "password")
	assert.Contains(t, v, "email")
	assert.Contains(t, v, "address")
	assert.NotContains(t, v, "phonenumber")
}

func TestValidateUniqueness_SkipsAbsentFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	ownerRepo := ownermock.NewMockRepository(ctrl)
	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	svc := registration.NewService(db, repo, ownerRepo, outbox, zap.NewNop())

	// No repo expectations: empty fields must not hit the database.
	v, err := svc.ValidateUniqueness(context.Background(), registration.RegisterRequest{})
	assert.NoError(t, err)
	assert.True(t, v.Empty())
}

func TestRegister_CommitsOwnerRestaurantAndOutboxTogether(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	ownerRepo := ownermock.NewMockRepository(ctrl)
	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	svc := registration.NewService(db, repo, ownerRepo, outbox, zap.NewNop())

	dbMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().CreateOwner(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().CreateRestaurant(gomock.Any(), gomock.Any()).Return(nil)
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.UserRegisteredTopic, e.Topic)
			assert.Equal(t, kafka.OutboxStatusPending, e.Status)

			var payload events.UserRegisteredEvent
			require.NoError(t, json.Unmarshal(e.Payload, &payload))
			assert.Equal(t, "user_registered", payload.EventType)
			assert.Equal(t, "ana@resto.test", payload.Email)
			return nil
		})
	dbMock.ExpectCommit()

	res, err := svc.Register(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, res.UserID)
	assert.NotEmpty(t, res.RestaurantID)
	assert.Equal(t, "/dashboard", res.Redirect)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegister_OutboxFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	ownerRepo := ownermock.NewMockRepository(ctrl)
	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	svc := registration.NewService(db, repo, ownerRepo, outbox, zap.NewNop())

	dbMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().CreateOwner(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().CreateRestaurant(gomock.Any(), gomock.Any()).Return(nil)
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)
	dbMock.ExpectRollback()

	_, err = svc.Register(context.Background(), validRequest())
	assert.Error(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
