package employee

import (
	"context"
	"time"

	employeeerrors "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/employee/errors"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, restaurantID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, restaurantID, id string) (EmployeeResponse, error)
	Create(ctx context.Context, restaurantID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	ToggleStatus(ctx context.Context, restaurantID, id string, isActive bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, restaurantID string) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, restaurantID, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, restaurantID, id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(*e), nil
}

func (s *service) Create(ctx context.Context, restaurantID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	r, ok := role.FromID(req.RoleID)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	taken, err := s.repo.EmailTaken(ctx, req.Email, "")
	if err != nil {
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return EmployeeResponse{}, err
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e := &Employee{
		RestaurantID: restaurantUUID,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     string(hashed),
		RoleID:       int(r),
		Gender:       req.Gender,
		IsActive:     true,
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err == nil {
			e.DateOfBirth = &dob
		}
	}

	if err := s.repo.Create(ctx, e); err != nil {
		l.Error("failed to create employee", zap.Error(err))
		return EmployeeResponse{}, err
	}

	l.Info("employee created",
		zap.String("employee_id", e.ID.String()),
		zap.String("role", r.Label()),
	)
	return mapToResponse(*e), nil
}

func (s *service) ToggleStatus(ctx context.Context, restaurantID, id string, isActive bool) error {
	e, err := s.repo.FindByID(ctx, restaurantID, id)
	if err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	e.IsActive = isActive
	return s.repo.Update(ctx, e)
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID.String(),
		RestaurantID: e.RestaurantID.String(),
		FullName:     e.FullName(),
		Email:        e.Email,
		RoleID:       e.RoleID,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if r, ok := e.Role(); ok {
		resp.RoleLabel = r.Label()
		resp.Redirect = r.RedirectRoute()
	}
	return resp
}
