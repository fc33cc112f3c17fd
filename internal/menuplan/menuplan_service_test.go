package menuplan_test

import (
	"context"
	"testing"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/menuplan"
	menuplanerrors "github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/menuplan/errors"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/menuplan/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreate_PersistsPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := menuplan.NewService(repo)

	restaurantID := uuid.NewString()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *menuplan.MenuPlan) error {
			assert.Equal(t, "Week 36", m.Name)
			assert.Equal(t, restaurantID, m.RestaurantID.String())
			assert.False(t, m.Archived)
			return nil
		})

	res, err := svc.Create(context.Background(), restaurantID, menuplan.CreateMenuPlanRequest{
		Name:      "Week 36",
		StartDate: "2026-08-31",
		EndDate:   "2026-09-06",
	})
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-31", res.StartDate)
	assert.Equal(t, "2026-09-06", res.EndDate)
}

func TestCreate_RejectsInvertedDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := menuplan.NewService(repo)

	_, err := svc.Create(context.Background(), uuid.NewString(), menuplan.CreateMenuPlanRequest{
		Name:      "Backwards",
		StartDate: "2026-09-06",
		EndDate:   "2026-08-31",
	})
	assert.ErrorIs(t, err, menuplanerrors.ErrInvalidDateRange)
}

func TestGetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := menuplan.NewService(repo)

	repo.EXPECT().
		FindByID(gomock.Any(), "rest-1", "missing").
		Return(nil, assert.AnError)

	_, err := svc.GetByID(context.Background(), "rest-1", "missing")
	assert.ErrorIs(t, err, menuplanerrors.ErrMenuPlanNotFound)
}

func TestArchiveExpired_DelegatesWithToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := menuplan.NewService(repo)

	repo.EXPECT().
		ArchiveExpired(gomock.Any(), gomock.AssignableToTypeOf(time.Time{})).
		Return(int64(3), nil)

	assert.NoError(t, svc.ArchiveExpired(context.Background()))
}

func TestActive_RespectsArchivedAndRange(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}

	plan := menuplan.MenuPlan{StartDate: day("2026-08-31"), EndDate: day("2026-09-06")}

	assert.True(t, plan.Active(day("2026-08-31")))
	assert.True(t, plan.Active(day("2026-09-06")))
	assert.False(t, plan.Active(day("2026-09-07")))
	assert.False(t, plan.Active(day("2026-08-30")))

	plan.Archived = true
	assert.False(t, plan.Active(day("2026-09-01")))
}
