package purchaseorder

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/events"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/messaging/kafka"
	purchaseordererrors "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/purchaseorder/errors"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	responseGuardPrefix = "po:response:"
	responseGuardTTL    = 30 * 24 * time.Hour
)

func responseGuardKey(poNumber string) string {
	return responseGuardPrefix + poNumber
}

//go:generate mockgen -source=purchaseorder_service.go -destination=mock/purchaseorder_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, restaurantID string) ([]PurchaseOrderResponse, error)
	Create(ctx context.Context, restaurantID string, req CreatePurchaseOrderRequest) (PurchaseOrderResponse, error)

	// Respond records a supplier's confirm/reject. The email link can be
	// clicked any number of times; only the first click mutates state.
	Respond(ctx context.Context, poNumber, action, message string) (RespondResult, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    redis.Cmdable
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb redis.Cmdable,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("purchaseorder.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("purchaseorder.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, rdb: rdb, logger: l}
}

func (s *service) GetAll(ctx context.Context, restaurantID string) ([]PurchaseOrderResponse, error) {
	orders, err := s.repo.FindAllByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	resp := make([]PurchaseOrderResponse, len(orders))
	for i, po := range orders {
		resp[i] = mapToResponse(po)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, restaurantID string, req CreatePurchaseOrderRequest) (PurchaseOrderResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return PurchaseOrderResponse{}, apperror.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PurchaseOrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	seq, err := qtx.NextPONumber(ctx, restaurantID)
	if err != nil {
		s.logger.Error("bump po counter failed", zap.Error(err))
		return PurchaseOrderResponse{}, err
	}

	po := &PurchaseOrder{
		ID:            uuid.New(),
		RestaurantID:  restaurantUUID,
		PONumber:      fmt.Sprintf("PO-%06d", seq),
		SupplierName:  req.SupplierName,
		SupplierEmail: req.SupplierEmail,
		Notes:         req.Notes,
		Status:        StatusDraft,
	}

	if err := qtx.Create(ctx, po); err != nil {
		s.logger.Error("persist purchase order failed", zap.Error(err))
		return PurchaseOrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PurchaseOrderResponse{}, err
	}

	s.logger.Info("purchase order created",
		zap.String("po_number", po.PONumber),
		zap.String("restaurant_id", restaurantID),
	)
	return mapToResponse(*po), nil
}

func (s *service) Respond(ctx context.Context, poNumber, action, message string) (RespondResult, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if action != "confirm" && action != "reject" {
		return RespondResult{}, purchaseordererrors.ErrInvalidAction
	}

	po, err := s.repo.FindByPONumber(ctx, poNumber)
	if err != nil {
		return RespondResult{}, purchaseordererrors.ErrPurchaseOrderNotFound
	}

	result := RespondResult{Action: action, PONumber: poNumber, Message: message}

	// First click wins; replays render the same page without touching state.
	fresh, err := s.rdb.SetNX(ctx, responseGuardKey(poNumber), action, responseGuardTTL).Result()
	if err != nil {
		return RespondResult{}, err
	}
	if !fresh {
		l.Info("duplicate purchase order response ignored",
			zap.String("po_number", poNumber),
			zap.String("action", action),
		)
		return result, nil
	}

	status := StatusConfirmed
	if action == "reject" {
		status = StatusRejected
	}

	if err := s.recordResponse(ctx, po, action, status); err != nil {
		// Release the guard so the supplier's retry can land.
		if delErr := s.rdb.Del(ctx, responseGuardKey(poNumber)).Err(); delErr != nil {
			l.Warn("release response guard failed", zap.Error(delErr))
		}
		return RespondResult{}, err
	}

	l.Info("supplier response recorded",
		zap.String("po_number", poNumber),
		zap.String("action", action),
	)
	return result, nil
}

// recordResponse flips the order status and enqueues the responded event in
// one transaction.
func (s *service) recordResponse(ctx context.Context, po *PurchaseOrder, action, status string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).UpdateStatus(ctx, po.ID.String(), status); err != nil {
		return err
	}

	event := events.PurchaseOrderRespondedEvent{
		EventType:    "purchase_order_responded",
		PONumber:     po.PONumber,
		RestaurantID: po.RestaurantID.String(),
		Action:       action,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "purchase_order",
		AggregateID:   po.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PurchaseOrderRespondedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func mapToResponse(po PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:            po.ID.String(),
		PONumber:      po.PONumber,
		SupplierName:  po.SupplierName,
		SupplierEmail: po.SupplierEmail,
		Notes:         po.Notes,
		Status:        po.Status,
		CreatedAt:     po.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
