// Package role defines the closed set of staff roles. Role ids are stable
// database values; adding a member requires touching every switch here so the
// label/redirect/predicate mappings stay total.
package role

type Role int

const (
	Manager         Role = 1
	Supervisor      Role = 2
	Waiter          Role = 3
	RestaurantOwner Role = 4
)

// All lists every defined role, in id order.
var All = []Role{Manager, Supervisor, Waiter, RestaurantOwner}

// FromID maps a raw integer to a Role. The second return is false for any id
// outside the defined set; it never panics.
func FromID(id int) (Role, bool) {
	r := Role(id)
	if r.Valid() {
		return r, true
	}
	return 0, false
}

func (r Role) Valid() bool {
	switch r {
	case Manager, Supervisor, Waiter, RestaurantOwner:
		return true
	default:
		return false
	}
}

// Label returns the display name shown in the UI.
func (r Role) Label() string {
	switch r {
	case Manager:
		return "Manager"
	case Supervisor:
		return "Supervisor"
	case Waiter:
		return "Waiter"
	case RestaurantOwner:
		return "Restaurant Owner"
	default:
		return "Unknown"
	}
}

// RedirectRoute is where a user of this role lands after login. Waiters get
// the mobile menu-planning view; everyone else gets the dashboard.
func (r Role) RedirectRoute() string {
	if r == Waiter {
		return "/m/menu-plans"
	}
	return "/dashboard"
}

// IsDashboardRole reports whether the role belongs on the desktop dashboard.
func (r Role) IsDashboardRole() bool {
	switch r {
	case Manager, Supervisor, RestaurantOwner:
		return true
	default:
		return false
	}
}

func (r Role) IsWaiter() bool {
	return r == Waiter
}

func (r Role) String() string {
	return r.Label()
}
