package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/auth/errors"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/employee"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/middleware"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/owner"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/restaurant"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// LoginOwner authenticates against the users table and issues a "web"
	// guard token.
	LoginOwner(ctx context.Context, email, password string) (token string, resp LoginResponse, err error)

	// LoginEmployee authenticates against the employees table and issues an
	// "employee" guard token.
	LoginEmployee(ctx context.Context, email, password string) (token string, resp LoginResponse, err error)
}

type service struct {
	ownerRepo      owner.Repository
	employeeRepo   employee.Repository
	restaurantRepo restaurant.Repository
}

func NewService(
	ownerRepo owner.Repository,
	employeeRepo employee.Repository,
	restaurantRepo restaurant.Repository,
) Service {
	return &service{
		ownerRepo:      ownerRepo,
		employeeRepo:   employeeRepo,
		restaurantRepo: restaurantRepo,
	}
}

func (s *service) LoginOwner(ctx context.Context, email, password string) (string, LoginResponse, error) {
	o, err := s.ownerRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(o.Password), []byte(password)); err != nil {
		return "", LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !o.IsActive {
		return "", LoginResponse{}, autherrors.ErrInactiveAccount
	}

	rest, err := s.restaurantRepo.FindByOwnerID(ctx, o.ID.String())
	if err != nil {
		return "", LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	r := role.RestaurantOwner
	token, err := generateGuardToken(middleware.GuardWeb, o.ID.String(), rest.ID.String(), int(r))
	if err != nil {
		return "", LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, LoginResponse{
		UserID:       o.ID.String(),
		RestaurantID: rest.ID.String(),
		Name:         o.FirstName + " " + o.LastName,
		Email:        o.Email,
		RoleLabel:    r.Label(),
		Guard:        middleware.GuardWeb,
		Redirect:     r.RedirectRoute(),
	}, nil
}

func (s *service) LoginEmployee(ctx context.Context, email, password string) (string, LoginResponse, error) {
	e, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password)); err != nil {
		return "", LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !e.IsActive {
		return "", LoginResponse{}, autherrors.ErrInactiveAccount
	}

	r, ok := e.Role()
	if !ok {
		return "", LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := generateGuardToken(middleware.GuardEmployee, e.ID.String(), e.RestaurantID.String(), e.RoleID)
	if err != nil {
		return "", LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, LoginResponse{
		UserID:       e.ID.String(),
		RestaurantID: e.RestaurantID.String(),
		Name:         e.FullName(),
		Email:        e.Email,
		RoleLabel:    r.Label(),
		Guard:        middleware.GuardEmployee,
		Redirect:     r.RedirectRoute(),
	}, nil
}

func generateGuardToken(guard, sub, restaurantID string, roleID int) (string, error) {
	claims := jwt.MapClaims{
		"guard":         guard,
		"sub":           sub,
		"restaurant_id": restaurantID,
		"role_id":       roleID,
		"exp":           time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
