package menuplan

import (
	"context"
	"time"

	menuplanerrors "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/menuplan/errors"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=menuplan_service.go -destination=mock/menuplan_service_mock.go -package=mock
type Service interface {
	GetCurrent(ctx context.Context, restaurantID string) ([]MenuPlanResponse, error)
	GetByID(ctx context.Context, restaurantID, id string) (MenuPlanResponse, error)
	Create(ctx context.Context, restaurantID string, req CreateMenuPlanRequest) (MenuPlanResponse, error)

	// ArchiveExpired is the nightly job body.
	ArchiveExpired(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCurrent(ctx context.Context, restaurantID string) ([]MenuPlanResponse, error) {
	plans, err := s.repo.FindCurrentByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	resp := make([]MenuPlanResponse, len(plans))
	for i, m := range plans {
		resp[i] = mapToResponse(m)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, restaurantID, id string) (MenuPlanResponse, error) {
	m, err := s.repo.FindByID(ctx, restaurantID, id)
	if err != nil {
		return MenuPlanResponse{}, menuplanerrors.ErrMenuPlanNotFound
	}
	return mapToResponse(*m), nil
}

func (s *service) Create(ctx context.Context, restaurantID string, req CreateMenuPlanRequest) (MenuPlanResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return MenuPlanResponse{}, apperror.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return MenuPlanResponse{}, apperror.ErrInvalidInput
	}
	if end.Before(start) {
		return MenuPlanResponse{}, menuplanerrors.ErrInvalidDateRange
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return MenuPlanResponse{}, apperror.ErrInvalidInput
	}

	m := &MenuPlan{
		RestaurantID: restaurantUUID,
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    start,
		EndDate:      end,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		l.Error("failed to create menu plan", zap.Error(err))
		return MenuPlanResponse{}, err
	}

	l.Info("menu plan created",
		zap.String("menu_plan_id", m.ID.String()),
		zap.String("restaurant_id", restaurantID),
	)
	return mapToResponse(*m), nil
}

func (s *service) ArchiveExpired(ctx context.Context) error {
	l := contextutil.GetLogger(ctx, nil)

	n, err := s.repo.ArchiveExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	l.Info("expired menu plans archived", zap.Int64("count", n))
	return nil
}

func mapToResponse(m MenuPlan) MenuPlanResponse {
	return MenuPlanResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		StartDate:   m.StartDate.Format("2006-01-02"),
		EndDate:     m.EndDate.Format("2006-01-02"),
		Archived:    m.Archived,
		CreatedAt:   m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
