package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/auth"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/employee"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/menuplan"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/messaging/kafka"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/middleware"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/owner"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/profile"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/purchaseorder"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/realtime"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/registration"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/render"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/reservation"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/restaurant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ownerSubscriptionSource adapts the owner repository to the subscription
// middleware.
type ownerSubscriptionSource struct {
	repo owner.Repository
}

func (s ownerSubscriptionSource) Subscription(ctx context.Context, ownerID string) (string, *time.Time, error) {
	o, err := s.repo.FindByID(ctx, ownerID)
	if err != nil {
		return "", nil, err
	}
	return o.Subscription, o.SubscribedUntil, nil
}

func registerModules(
	router *gin.Engine,
	cfg *bootstrap.AppConfig,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	ownerRepo := owner.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	restaurantRepo := restaurant.NewRepository(gormDB)
	menuPlanRepo := menuplan.NewRepository(gormDB)
	reservationRepo := reservation.NewRepository(gormDB)
	registrationRepo := registration.NewRepository(db)
	purchaseOrderRepo := purchaseorder.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(ownerRepo, employeeRepo, restaurantRepo)
	registrationService := registration.NewService(db, registrationRepo, ownerRepo, outboxRepo)
	profileService := profile.NewService(ownerRepo, employeeRepo)
	employeeService := employee.NewService(employeeRepo)
	menuPlanService := menuplan.NewService(menuPlanRepo)
	reservationService := reservation.NewService(reservationRepo, rdb)
	purchaseOrderService := purchaseorder.NewService(db, purchaseOrderRepo, outboxRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	registrationHandler := registration.NewHandler(registrationService)
	profileHandler := profile.NewHandler(profileService)
	employeeHandler := employee.NewHandler(employeeService)
	menuPlanHandler := menuplan.NewHandler(menuPlanService)
	reservationHandler := reservation.NewHandler(reservationService)
	purchaseOrderHandler := purchaseorder.NewHandlerWithRedis(purchaseOrderService, rdb)

	// --- Middleware alias table ---
	subSource := ownerSubscriptionSource{repo: ownerRepo}
	cfg.Aliases = bootstrap.MiddlewareAliases{
		"admin.auth":              middleware.OwnerAuth(),
		"employee.auth":           middleware.EmployeeAuth(),
		"check.subscription":      middleware.CheckSubscription(subSource),
		"check.demo.subscription": middleware.CheckDemoSubscription(subSource),
		"role":                    middleware.DashboardOnly(),
	}

	// --- Routes ---
	router.GET("/", appShellHandler)
	router.POST("/broadcasting-custom-auth",
		middleware.ResolveAuthContext(),
		realtime.AuthHandler(cfg.Broker),
	)

	api := router.Group("/api/v1")
	api.Use(middleware.Idempotency(rdb))
	{
		auth.RegisterRoutes(api, authHandler)
		registration.RegisterRoutes(api, registrationHandler)
		profile.RegisterRoutes(api, profileHandler)
		employee.RegisterRoutes(api, employeeHandler, cfg.Aliases)
		menuplan.RegisterRoutes(api, menuPlanHandler, cfg.Aliases)
		reservation.RegisterRoutes(api, reservationHandler, cfg.Aliases)
		purchaseorder.RegisterRoutes(api, purchaseOrderHandler, cfg.Aliases)
	}

	return nil
}

// appShellHandler serves the SPA host page. The appearance cookie is a hint
// written by the front end; the CSRF token doubles as the broadcast-auth
// token and is minted per browser.
func appShellHandler(c *gin.Context) {
	appearance, _ := c.Cookie("appearance")

	csrf, err := c.Cookie("XSRF-TOKEN")
	if err != nil || csrf == "" {
		csrf = uuid.NewString()
		c.SetCookie("XSRF-TOKEN", csrf, 0, "/", "", false, false)
	}

	html, err := render.AppShell(render.AppShellProps{
		Title:      "Resto",
		Appearance: appearance,
		CSRFToken:  csrf,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "render failure")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
