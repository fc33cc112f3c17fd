package authctx_test

import (
	"testing"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/authctx"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Precedence(t *testing.T) {
	owner := &authctx.Identity{ID: "owner-1", RestaurantID: "r-1"}
	employee := &authctx.Identity{ID: "emp-1", RestaurantID: "r-1", Role: role.Waiter}

	t.Run("employee only resolves employee", func(t *testing.T) {
		ac := authctx.Resolve(nil, employee)
		assert.True(t, ac.IsEmployee())
		assert.Equal(t, "emp-1", ac.ActorID())
		r, ok := ac.Role()
		assert.True(t, ok)
		assert.Equal(t, role.Waiter, r)
	})

	t.Run("owner only resolves owner", func(t *testing.T) {
		ac := authctx.Resolve(owner, nil)
		assert.True(t, ac.IsOwner())
		assert.Equal(t, "owner-1", ac.ActorID())
		r, ok := ac.Role()
		assert.True(t, ok)
		assert.Equal(t, role.RestaurantOwner, r)
	})

	t.Run("both active resolves owner", func(t *testing.T) {
		// employee wins only when the owner guard is absent
		ac := authctx.Resolve(owner, employee)
		assert.True(t, ac.IsOwner())
		assert.Equal(t, "owner-1", ac.ActorID())
	})

	t.Run("neither resolves anonymous", func(t *testing.T) {
		ac := authctx.Resolve(nil, nil)
		assert.True(t, ac.IsAnonymous())
		assert.Equal(t, "", ac.ActorID())
		assert.Equal(t, "", ac.RestaurantID())
		_, ok := ac.Role()
		assert.False(t, ok)
	})
}

func TestResolve_RestaurantScope(t *testing.T) {
	ac := authctx.Resolve(nil, &authctx.Identity{ID: "emp-2", RestaurantID: "r-9", Role: role.Manager})
	assert.Equal(t, "r-9", ac.RestaurantID())
}
