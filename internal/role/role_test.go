package role_test

import (
	"testing"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"

	"github.com/stretchr/testify/assert"
)

func TestRole_FromID(t *testing.T) {
	cases := []struct {
		name          string
		id            int
		want          role.Role
		wantOK        bool
		wantLabel     string
		wantRedirect  string
		wantDashboard bool
		wantWaiter    bool
	}{
		{"manager", 1, role.Manager, true, "Manager", "/dashboard", true, false},
		{"supervisor", 2, role.Supervisor, true, "Supervisor", "/dashboard", true, false},
		{"waiter", 3, role.Waiter, true, "Waiter", "/m/menu-plans", false, true},
		{"restaurant owner", 4, role.RestaurantOwner, true, "Restaurant Owner", "/dashboard", true, false},
		{"zero", 0, 0, false, "", "", false, false},
		{"above range", 5, 0, false, "", "", false, false},
		{"negative", -1, 0, false, "", "", false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := role.FromID(tc.id)
			assert.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				return
			}

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantLabel, got.Label())
			assert.Equal(t, tc.wantRedirect, got.RedirectRoute())
			assert.Equal(t, tc.wantDashboard, got.IsDashboardRole())
			assert.Equal(t, tc.wantWaiter, got.IsWaiter())
		})
	}
}

func TestRole_AllMembersTotal(t *testing.T) {
	for _, r := range role.All {
		assert.True(t, r.Valid())
		assert.NotEmpty(t, r.Label())
		assert.NotEqual(t, "Unknown", r.Label())
		assert.NotEmpty(t, r.RedirectRoute())
		// dashboard membership is exactly "not a waiter"
		assert.Equal(t, !r.IsWaiter(), r.IsDashboardRole())
	}
}

func TestRole_InvalidNeverPanics(t *testing.T) {
	bad := role.Role(99)
	assert.False(t, bad.Valid())
	assert.Equal(t, "Unknown", bad.Label())
	assert.Equal(t, "/dashboard", bad.RedirectRoute())
	assert.False(t, bad.IsDashboardRole())
}
