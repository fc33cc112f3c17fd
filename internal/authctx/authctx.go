// Package authctx models the per-request authentication context. Two
// independent guards (owner "web" JWT and employee JWT) may each resolve an
// identity; the context is resolved exactly once per request in middleware
// and passed explicitly, never re-derived mid-handler.
package authctx

import (
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindAnonymous Kind = iota
	KindOwner
	KindEmployee
)

// Identity is what a single guard resolved.
type Identity struct {
	ID           string
	RestaurantID string
	Role         role.Role
}

// Context is the resolved tagged union for one request.
type Context struct {
	Kind     Kind
	Owner    *Identity // set when Kind == KindOwner
	Employee *Identity // set when Kind == KindEmployee
}

func Anonymous() Context {
	return Context{Kind: KindAnonymous}
}

// Resolve applies the guard precedence: the employee guard wins only when it
// is active and the owner guard is not; otherwise any owner identity wins.
func Resolve(owner, employee *Identity) Context {
	if employee != nil && owner == nil {
		return Context{Kind: KindEmployee, Employee: employee}
	}
	if owner != nil {
		return Context{Kind: KindOwner, Owner: owner}
	}
	return Anonymous()
}

func (c Context) IsOwner() bool     { return c.Kind == KindOwner }
func (c Context) IsEmployee() bool  { return c.Kind == KindEmployee }
func (c Context) IsAnonymous() bool { return c.Kind == KindAnonymous }

// ActorID returns the id of whichever identity is active, or "".
func (c Context) ActorID() string {
	switch c.Kind {
	case KindOwner:
		return c.Owner.ID
	case KindEmployee:
		return c.Employee.ID
	default:
		return ""
	}
}

// RestaurantID returns the active identity's restaurant scope, or "".
func (c Context) RestaurantID() string {
	switch c.Kind {
	case KindOwner:
		return c.Owner.RestaurantID
	case KindEmployee:
		return c.Employee.RestaurantID
	default:
		return ""
	}
}

// Role returns the active identity's role; owners are always
// role.RestaurantOwner regardless of the stored claim.
func (c Context) Role() (role.Role, bool) {
	switch c.Kind {
	case KindOwner:
		return role.RestaurantOwner, true
	case KindEmployee:
		return c.Employee.Role, c.Employee.Role.Valid()
	default:
		return 0, false
	}
}

const ginKey = "auth_context"

// Store attaches the resolved context to gin.
func Store(c *gin.Context, ac Context) {
	c.Set(ginKey, ac)
}

// FromGin returns the resolved context, or Anonymous when middleware never
// ran (e.g. routes outside the guard chain).
func FromGin(c *gin.Context) Context {
	if v, ok := c.Get(ginKey); ok {
		if ac, ok := v.(Context); ok {
			return ac
		}
	}
	return Anonymous()
}
