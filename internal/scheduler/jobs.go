package scheduler

import (
	"context"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/menuplan"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/reservation"
)

// Jobs returns the production job set. Specs are standard five-field cron:
// menu-plan archiving runs nightly just after midnight, reservation expiry
// sweeps every quarter hour.
func Jobs(menuPlans menuplan.Service, reservations reservation.Service) []Job {
	return []Job{
		{
			Name: "menu-plans:archive-expired",
			Spec: "1 0 * * *",
			Run: func(ctx context.Context) error {
				return menuPlans.ArchiveExpired(ctx)
			},
		},
		{
			Name: "reservations:update-expired",
			Spec: "*/15 * * * *",
			Run: func(ctx context.Context) error {
				return reservations.ReleaseExpired(ctx)
			},
		},
	}
}
