package reservation

import (
	"context"
	"encoding/json"
	"time"

	reservationerrors "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/reservation/errors"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	availabilityKeyPrefix = "tables:availability:"
	availabilityTTL       = 30 * time.Second
	defaultHoldDuration   = 2 * time.Hour
)

func availabilityKey(restaurantID string) string {
	return availabilityKeyPrefix + restaurantID
}

//go:generate mockgen -source=reservation_service.go -destination=mock/reservation_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, restaurantID string) ([]ReservationResponse, error)
	Create(ctx context.Context, restaurantID string, req CreateReservationRequest) (ReservationResponse, error)

	// TableAvailability serves the dashboard poll. Results are cached for
	// 30 seconds and concurrent cache misses for the same restaurant
	// collapse into one query.
	TableAvailability(ctx context.Context, restaurantID string) ([]TableAvailability, error)

	// ReleaseExpired is the quarter-hourly job body.
	ReleaseExpired(ctx context.Context) error
}

type service struct {
	repo  Repository
	rdb   redis.Cmdable
	group singleflight.Group
}

func NewService(repo Repository, rdb redis.Cmdable) Service {
	return &service{repo: repo, rdb: rdb}
}

func (s *service) GetAll(ctx context.Context, restaurantID string) ([]ReservationResponse, error) {
	reservations, err := s.repo.FindAllByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	resp := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, restaurantID string, req CreateReservationRequest) (ReservationResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	reservedFor, err := time.Parse("2006-01-02 15:04", req.ReservedFor)
	if err != nil {
		return ReservationResponse{}, apperror.ErrInvalidInput
	}
	if reservedFor.Before(time.Now()) {
		return ReservationResponse{}, reservationerrors.ErrReservationInPast
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return ReservationResponse{}, apperror.ErrInvalidInput
	}
	tableUUID, err := uuid.Parse(req.TableID)
	if err != nil {
		return ReservationResponse{}, apperror.ErrInvalidInput
	}

	tables, err := s.repo.FindTables(ctx, restaurantID)
	if err != nil {
		return ReservationResponse{}, err
	}
	available := false
	for _, t := range tables {
		if t.ID == tableUUID && t.Status == TableAvailable {
			available = true
			break
		}
	}
	if !available {
		return ReservationResponse{}, reservationerrors.ErrTableUnavailable
	}

	r := &Reservation{
		RestaurantID: restaurantUUID,
		TableID:      tableUUID,
		GuestName:    req.GuestName,
		GuestPhone:   req.GuestPhone,
		PartySize:    req.PartySize,
		ReservedFor:  reservedFor,
		ExpiresAt:    reservedFor.Add(defaultHoldDuration),
		Status:       StatusReserved,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		l.Error("failed to create reservation", zap.Error(err))
		return ReservationResponse{}, err
	}

	// The cached availability snapshot is now stale.
	if err := s.rdb.Del(ctx, availabilityKey(restaurantID)).Err(); err != nil {
		l.Warn("failed to invalidate availability cache", zap.Error(err))
	}

	l.Info("reservation created",
		zap.String("reservation_id", r.ID.String()),
		zap.String("table_id", req.TableID),
	)
	return mapToResponse(*r), nil
}

func (s *service) TableAvailability(ctx context.Context, restaurantID string) ([]TableAvailability, error) {
	key := availabilityKey(restaurantID)

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var out []TableAvailability
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
		// Unreadable cache entry; fall through to the database.
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		tables, err := s.repo.FindTables(ctx, restaurantID)
		if err != nil {
			return nil, err
		}

		out := make([]TableAvailability, len(tables))
		for i, t := range tables {
			out[i] = TableAvailability{
				TableID:  t.ID.String(),
				Number:   t.Number,
				Capacity: t.Capacity,
				Status:   t.Status,
			}
		}

		if payload, err := json.Marshal(out); err == nil {
			if err := s.rdb.Set(ctx, key, payload, availabilityTTL).Err(); err != nil {
				contextutil.GetLogger(ctx, nil).Warn("failed to cache availability", zap.Error(err))
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]TableAvailability), nil
}

func (s *service) ReleaseExpired(ctx context.Context) error {
	l := contextutil.GetLogger(ctx, nil)

	n, err := s.repo.ReleaseExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	l.Info("expired reservations released", zap.Int64("count", n))
	return nil
}

func mapToResponse(r Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID.String(),
		TableID:     r.TableID.String(),
		GuestName:   r.GuestName,
		GuestPhone:  r.GuestPhone,
		PartySize:   r.PartySize,
		ReservedFor: r.ReservedFor.Format("2006-01-02 15:04"),
		ExpiresAt:   r.ExpiresAt.Format("2006-01-02 15:04"),
		Status:      r.Status,
	}
}
