package registration

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/events"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/messaging/kafka"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/owner"
	registrationerrors "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/registration/errors"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/restaurant"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/contextutil"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=registration_service.go -destination=mock/registration_service_mock.go -package=mock
type Service interface {
	// ValidateUniqueness runs the rule checks that need persisted state:
	// address/email/phonenumber uniqueness and the password policy. It only
	// probes fields that are present so it composes with binding violations.
	ValidateUniqueness(ctx context.Context, req RegisterRequest) (validation.Violations, error)

	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	ownerRepo owner.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ownerRepo owner.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("registration.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		ownerRepo: ownerRepo,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func minPasswordLength() int {
	if v := os.Getenv("PASSWORD_MIN_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 8
}

func (s *service) ValidateUniqueness(ctx context.Context, req RegisterRequest) (validation.Violations, error) {
	out := validation.Violations{}

	if req.Password != "" && len(req.Password) < minPasswordLength() {
		out.Add("password", fmt.Sprintf("Password must be at least %d characters", minPasswordLength()))
	}

	if req.Email != "" {
		taken, err := s.ownerRepo.EmailTaken(ctx, req.Email, "")
		if err != nil {
			return nil, err
		}
		if taken {
			out.Add("email", "Email has already been taken")
		}
	}

	if req.Address != "" {
		taken, err := s.ownerRepo.AddressTaken(ctx, req.Address)
		if err != nil {
			return nil, err
		}
		if taken {
			out.Add("address", "Address has already been taken")
		}
	}

	if req.PhoneNumber != "" {
		taken, err := s.ownerRepo.PhoneTaken(ctx, req.PhoneNumber)
		if err != nil {
			return nil, err
		}
		if taken {
			out.Add("phonenumber", "Phonenumber has already been taken")
		}
	}

	return out, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, err
	}

	o := &owner.Owner{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Address:      req.Address,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Password:     string(hashed),
		Subscription: owner.SubscriptionDemo,
		IsActive:     true,
	}
	rest := &restaurant.Restaurant{
		ID:        uuid.New(),
		OwnerID:   o.ID,
		Name:      req.RestaurantName,
		Address:   req.RestaurantAddress,
		ContactNo: req.ContactNo,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateOwner(ctx, o); err != nil {
		s.logger.Error("persist owner failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, mapUniqueViolation(err)
	}
	if err := qtx.CreateRestaurant(ctx, rest); err != nil {
		s.logger.Error("persist restaurant failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, registrationerrors.ErrRegistrationFailed
	}

	// Outbox row rides the same transaction; the event exists iff the user
	// does. The worker delivers it at-least-once.
	event := events.UserRegisteredEvent{
		EventType:    "user_registered",
		UserID:       o.ID.String(),
		RestaurantID: rest.ID.String(),
		Email:        o.Email,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return RegisterResponse{}, err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "user",
		AggregateID:   o.ID.String(),
		EventType:     event.EventType,
		Topic:         events.UserRegisteredTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("outbox persist failed", zap.String("user_id", o.ID.String()), zap.Error(err))
		return RegisterResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, err
	}

	s.logger.Info("registration completed",
		zap.String("request_id", rid),
		zap.String("user_id", o.ID.String()),
		zap.String("restaurant_id", rest.ID.String()),
	)

	return RegisterResponse{
		UserID:       o.ID.String(),
		RestaurantID: rest.ID.String(),
		Email:        o.Email,
		Redirect:     role.RestaurantOwner.RedirectRoute(),
	}, nil
}

// mapUniqueViolation turns a 23505 on one of the users unique indexes into a
// field violation; a validation probe can race a concurrent insert.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return registrationerrors.ErrRegistrationFailed
	}

	field := "email"
	switch pgErr.ConstraintName {
	case "users_address_key", "idx_users_address":
		field = "address"
	case "users_phonenumber_key", "idx_users_phonenumber":
		field = "phonenumber"
	}

	return validationError(field, "has already been taken")
}

func validationError(field, msg string) error {
	v := validation.Violations{}
	v.Add(field, fmt.Sprintf("%s %s", field, msg))
	return apperror.UnprocessableEntity(v)
}
