package profile

import (
	"context"
	"testing"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/authctx"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/employee"
	employeemock "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/employee/mock"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/owner"
	ownermock "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/owner/mock"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func employeeContext(id, restaurantID string) authctx.Context {
	return authctx.Resolve(nil, &authctx.Identity{
		ID:           id,
		RestaurantID: restaurantID,
		Role:         role.Waiter,
	})
}

func ownerContext(id, restaurantID string) authctx.Context {
	return authctx.Resolve(&authctx.Identity{ID: id, RestaurantID: restaurantID}, nil)
}

func TestValidateEmail_EmployeeExcludesSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerRepo := ownermock.NewMockRepository(ctrl)
	employeeRepo := employeemock.NewMockRepository(ctrl)
	svc := NewService(ownerRepo, employeeRepo)

	ac := employeeContext("emp-1", "rest-1")

	employeeRepo.EXPECT().
		EmailTaken(gomock.Any(), "me@resto.test", "emp-1").
		Return(false, nil)

	v, err := svc.ValidateEmail(context.Background(), ac, "me@resto.test")
	assert.NoError(t, err)
	assert.True(t, v.Empty())
}

func TestValidateEmail_EmployeeEmailTakenByOther(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerRepo := ownermock.NewMockRepository(ctrl)
	employeeRepo := employeemock.NewMockRepository(ctrl)
	svc := NewService(ownerRepo, employeeRepo)

	ac := employeeContext("emp-1", "rest-1")

	employeeRepo.EXPECT().
		EmailTaken(gomock.Any(), "other@resto.test", "emp-1").
		Return(true, nil)

	v, err := svc.ValidateEmail(context.Background(), ac, "other@resto.test")
	assert.NoError(t, err)
	assert.Equal(t, "Email has already been taken", v["email"])
}

func TestValidateEmail_OwnerProbesUsersTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerRepo := ownermock.NewMockRepository(ctrl)
	employeeRepo := employeemock.NewMockRepository(ctrl)
	svc := NewService(ownerRepo, employeeRepo)

	ac := ownerContext("own-1", "rest-1")

	ownerRepo.EXPECT().
		EmailTaken(gomock.Any(), "owner@resto.test", "own-1").
		Return(false, nil)

	v, err := svc.ValidateEmail(context.Background(), ac, "owner@resto.test")
	assert.NoError(t, err)
	assert.True(t, v.Empty())
}

// Anonymous requests reach the uniqueness probe with no exclusion id. The
// probe then covers the whole users table, so a value held by anyone fails
// validation. This mirrors the deployed behavior.
func TestValidateEmail_AnonymousProbesUnscoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerRepo := ownermock.NewMockRepository(ctrl)
	employeeRepo := employeemock.NewMockRepository(ctrl)
	svc := NewService(ownerRepo, employeeRepo)

	ownerRepo.EXPECT().
		EmailTaken(gomock.Any(), "taken@resto.test", "").
		Return(true, nil)

	v, err := svc.ValidateEmail(context.Background(), authctx.Anonymous(), "taken@resto.test")
	assert.NoError(t, err)
	assert.Equal(t, "Email has already been taken", v["email"])
}

func TestUpdate_EmployeePersistsAndReportsGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerRepo := ownermock.NewMockRepository(ctrl)
	employeeRepo := employeemock.NewMockRepository(ctrl)
	svc := NewService(ownerRepo, employeeRepo)

	empID := uuid.New()
	ac := employeeContext(empID.String(), "rest-1")

	employeeRepo.EXPECT().
		FindByID(gomock.Any(), "rest-1", empID.String()).
		Return(&employee.Employee{ID: empID, Email: "old@resto.test"}, nil)
	employeeRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "new@resto.test", e.Email)
			assert.Equal(t, "Ana", e.FirstName)
			assert.NotNil(t, e.DateOfBirth)
			return nil
		})

	res, err := svc.Update(context.Background(), ac, UpdateProfileRequest{
		FirstName:   "Ana",
		LastName:    "Reyes",
		Email:       "new@resto.test",
		DateOfBirth: "1995-04-12",
		Gender:      "Female",
	})
	assert.NoError(t, err)
	assert.Equal(t, "employee", res.Guard)
	assert.Equal(t, "new@resto.test", res.Email)
}

func TestUpdate_OwnerPersistsAndReportsGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerRepo := ownermock.NewMockRepository(ctrl)
	employeeRepo := employeemock.NewMockRepository(ctrl)
	svc := NewService(ownerRepo, employeeRepo)

	ownID := uuid.New()
	ac := ownerContext(ownID.String(), "rest-1")

	ownerRepo.EXPECT().
		FindByID(gomock.Any(), ownID.String()).
		Return(&owner.Owner{ID: ownID, Email: "old@resto.test"}, nil)
	ownerRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.Update(context.Background(), ac, UpdateProfileRequest{
		FirstName:   "Ben",
		LastName:    "Cruz",
		Email:       "ben@resto.test",
		DateOfBirth: "1988-11-02",
		Gender:      "Male",
	})
	assert.NoError(t, err)
	assert.Equal(t, "web", res.Guard)
}

func TestUpdate_AnonymousUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerRepo := ownermock.NewMockRepository(ctrl)
	employeeRepo := employeemock.NewMockRepository(ctrl)
	svc := NewService(ownerRepo, employeeRepo)

	_, err := svc.Update(context.Background(), authctx.Anonymous(), UpdateProfileRequest{
		FirstName:   "Ghost",
		LastName:    "User",
		Email:       "ghost@resto.test",
		DateOfBirth: "1990-01-01",
		Gender:      "Other",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
