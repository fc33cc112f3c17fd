package reservation_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/reservation"
	reservationerrors "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/reservation/errors"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/reservation/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreate_ReservesAvailableTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	svc := reservation.NewService(repo, rdb)

	restaurantID := uuid.NewString()
	tableID := uuid.New()

	repo.EXPECT().
		FindTables(gomock.Any(), restaurantID).
		Return([]reservation.DiningTable{
			{ID: tableID, Number: 4, Capacity: 4, Status: reservation.TableAvailable},
		}, nil)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *reservation.Reservation) error {
			assert.Equal(t, tableID, r.TableID)
			assert.Equal(t, reservation.StatusReserved, r.Status)
			assert.True(t, r.ExpiresAt.After(r.ReservedFor))
			return nil
		})
	redisMock.ExpectDel("tables:availability:" + restaurantID).SetVal(1)

	reservedFor := time.Now().Add(24 * time.Hour).Format("2006-01-02 15:04")
	res, err := svc.Create(context.Background(), restaurantID, reservation.CreateReservationRequest{
		TableID:     tableID.String(),
		GuestName:   "Dela Cruz",
		PartySize:   4,
		ReservedFor: reservedFor,
	})
	assert.NoError(t, err)
	assert.Equal(t, reservation.StatusReserved, res.Status)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCreate_RejectsReservedTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	rdb, _ := redismock.NewClientMock()
	svc := reservation.NewService(repo, rdb)

	restaurantID := uuid.NewString()
	tableID := uuid.New()

	repo.EXPECT().
		FindTables(gomock.Any(), restaurantID).
		Return([]reservation.DiningTable{
			{ID: tableID, Status: reservation.TableReserved},
		}, nil)

	reservedFor := time.Now().Add(24 * time.Hour).Format("2006-01-02 15:04")
	_, err := svc.Create(context.Background(), restaurantID, reservation.CreateReservationRequest{
		TableID:     tableID.String(),
		GuestName:   "Dela Cruz",
		PartySize:   2,
		ReservedFor: reservedFor,
	})
	assert.ErrorIs(t, err, reservationerrors.ErrTableUnavailable)
}

func TestCreate_RejectsPastTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	rdb, _ := redismock.NewClientMock()
	svc := reservation.NewService(repo, rdb)

	_, err := svc.Create(context.Background(), uuid.NewString(), reservation.CreateReservationRequest{
		TableID:     uuid.NewString(),
		GuestName:   "Dela Cruz",
		PartySize:   2,
		ReservedFor: "2020-01-01 19:00",
	})
	assert.ErrorIs(t, err, reservationerrors.ErrReservationInPast)
}

func TestTableAvailability_CacheMissQueriesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	svc := reservation.NewService(repo, rdb)

	restaurantID := uuid.NewString()
	key := "tables:availability:" + restaurantID
	tableID := uuid.New()

	redisMock.ExpectGet(key).RedisNil()

	repo.EXPECT().
		FindTables(gomock.Any(), restaurantID).
		Return([]reservation.DiningTable{
			{ID: tableID, Number: 1, Capacity: 2, Status: reservation.TableAvailable},
		}, nil)

	expected := []reservation.TableAvailability{
		{TableID: tableID.String(), Number: 1, Capacity: 2, Status: reservation.TableAvailable},
	}
	payload, _ := json.Marshal(expected)
	redisMock.ExpectSet(key, payload, 30*time.Second).SetVal("OK")

	out, err := svc.TableAvailability(context.Background(), restaurantID)
	assert.NoError(t, err)
	assert.Equal(t, expected, out)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestTableAvailability_CacheHitSkipsDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	svc := reservation.NewService(repo, rdb)

	restaurantID := uuid.NewString()
	key := "tables:availability:" + restaurantID

	cached := []reservation.TableAvailability{
		{TableID: uuid.NewString(), Number: 7, Capacity: 6, Status: reservation.TableOccupied},
	}
	payload, _ := json.Marshal(cached)
	redisMock.ExpectGet(key).SetVal(string(payload))

	out, err := svc.TableAvailability(context.Background(), restaurantID)
	assert.NoError(t, err)
	assert.Equal(t, cached, out)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestReleaseExpired_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	rdb, _ := redismock.NewClientMock()
	svc := reservation.NewService(repo, rdb)

	repo.EXPECT().
		ReleaseExpired(gomock.Any(), gomock.AssignableToTypeOf(time.Time{})).
		Return(int64(2), nil)

	assert.NoError(t, svc.ReleaseExpired(context.Background()))
}
