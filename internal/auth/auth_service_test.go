package auth_test

import (
	"context"
	"testing"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/auth"
	autherrors "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/auth/errors"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/employee"
	employeemock "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/employee/mock"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/owner"
	ownermock "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/owner/mock"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/restaurant"
	restaurantmock "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/restaurant/mock"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newMocks(t *testing.T) (*ownermock.MockRepository, *employeemock.MockRepository, *restaurantmock.MockRepository, auth.Service) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ownerRepo := ownermock.NewMockRepository(ctrl)
	employeeRepo := employeemock.NewMockRepository(ctrl)
	restaurantRepo := restaurantmock.NewMockRepository(ctrl)
	return ownerRepo, employeeRepo, restaurantRepo, auth.NewService(ownerRepo, employeeRepo, restaurantRepo)
}

func hash(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLoginOwner_IssuesWebGuard(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ownerRepo, _, restaurantRepo, svc := newMocks(t)

	ownerID := uuid.New()
	restID := uuid.New()

	ownerRepo.EXPECT().
		FindByEmail(gomock.Any(), "owner@resto.test").
		Return(&owner.Owner{
			ID:        ownerID,
			FirstName: "Ana",
			LastName:  "Reyes",
			Email:     "owner@resto.test",
			Password:  hash(t, "secret123"),
			IsActive:  true,
		}, nil)
	restaurantRepo.EXPECT().
		FindByOwnerID(gomock.Any(), ownerID.String()).
		Return(&restaurant.Restaurant{ID: restID}, nil)

	token, resp, err := svc.LoginOwner(context.Background(), "owner@resto.test", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "web", resp.Guard)
	assert.Equal(t, "/dashboard", resp.Redirect)
	assert.Equal(t, restID.String(), resp.RestaurantID)
}

func TestLoginOwner_WrongPassword(t *testing.T) {
	ownerRepo, _, _, svc := newMocks(t)

	ownerRepo.EXPECT().
		FindByEmail(gomock.Any(), "owner@resto.test").
		Return(&owner.Owner{Password: hash(t, "right")}, nil)

	_, _, err := svc.LoginOwner(context.Background(), "owner@resto.test", "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLoginEmployee_WaiterRedirectsToMobilePlans(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, employeeRepo, _, svc := newMocks(t)

	employeeRepo.EXPECT().
		FindByEmail(gomock.Any(), "waiter@resto.test").
		Return(&employee.Employee{
			ID:           uuid.New(),
			RestaurantID: uuid.New(),
			FirstName:    "Ben",
			LastName:     "Cruz",
			Email:        "waiter@resto.test",
			Password:     hash(t, "secret123"),
			RoleID:       int(role.Waiter),
			IsActive:     true,
		}, nil)

	token, resp, err := svc.LoginEmployee(context.Background(), "waiter@resto.test", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "employee", resp.Guard)
	assert.Equal(t, "/m/menu-plans", resp.Redirect)
}

func TestLoginEmployee_InactiveAccount(t *testing.T) {
	_, employeeRepo, _, svc := newMocks(t)

	employeeRepo.EXPECT().
		FindByEmail(gomock.Any(), "gone@resto.test").
		Return(&employee.Employee{
			Password: hash(t, "secret123"),
			RoleID:   int(role.Manager),
			IsActive: false,
		}, nil)

	_, _, err := svc.LoginEmployee(context.Background(), "gone@resto.test", "secret123")
	assert.ErrorIs(t, err, autherrors.ErrInactiveAccount)
}

func TestLoginEmployee_CorruptRoleRejected(t *testing.T) {
	_, employeeRepo, _, svc := newMocks(t)

	employeeRepo.EXPECT().
		FindByEmail(gomock.Any(), "odd@resto.test").
		Return(&employee.Employee{
			Password: hash(t, "secret123"),
			RoleID:   99,
			IsActive: true,
		}, nil)

	_, _, err := svc.LoginEmployee(context.Background(), "odd@resto.test", "secret123")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}
