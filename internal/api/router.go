package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/northbound/studio-api/docs"
	"github.com/northbound/studio-api/internal/api/handler"
	"github.com/northbound/studio-api/internal/api/middleware"
	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
	"github.com/northbound/studio-api/internal/core/service"
	"github.com/northbound/studio-api/internal/infrastructure/config"
	mongorepo "github.com/northbound/studio-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/northbound/studio-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder and service are constructed by the caller because the
// dispatcher's lifecycle (worker startup, drain on shutdown) belongs to main.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	recorder ports.AuditRecorder,
	auditService ports.AuditService,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Repositories ---
	users := mongorepo.NewUserRepository(db)
	projects := mongorepo.NewProjectRepository(db)
	assets := mongorepo.NewAssetRepository(db)
	invoices := mongorepo.NewInvoiceRepository(db)
	payouts := mongorepo.NewPayoutRepository(db)
	tickets := mongorepo.NewTicketRepository(db)
	usage := mongorepo.NewUsageRepository(db)
	videographers := mongorepo.NewVideographerRepository(db)
	toggles := mongorepo.NewToggleRepository(db)
	slots := redisrepo.NewSlotStore(rdb)

	// --- Services ---
	sessions := service.NewSessionStore(users, slots, recorder, cfg.JWTSecret, cfg.TokenTTL, log)
	usageService := service.NewUsageService(usage, log)
	projectService := service.NewProjectService(projects, recorder, log)
	assetService := service.NewAssetService(assets, projects, usageService, recorder, log)
	invoiceService := service.NewInvoiceService(invoices, recorder, log)
	payoutService := service.NewPayoutService(payouts, recorder, log)
	ticketService := service.NewTicketService(tickets, log)
	videographerService := service.NewVideographerService(videographers, log)
	toggleService := service.NewToggleService(toggles, recorder, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(sessions)
	projectHandler := handler.NewProjectHandler(projectService)
	assetHandler := handler.NewAssetHandler(assetService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	payoutHandler := handler.NewPayoutHandler(payoutService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	usageHandler := handler.NewUsageHandler(usageService)
	videographerHandler := handler.NewVideographerHandler(videographerService)
	auditHandler := handler.NewAuditHandler(auditService)
	toggleHandler := handler.NewToggleHandler(toggleService)

	// --- Health probes and operational endpoints (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// Every /v1 route sees the resolved session; the guard decides per group
	// whether the caller may proceed.
	v1 := e.Group("/v1", middleware.Session(sessions, cfg.JWTSecret))

	// --- Auth (no guard: login and signup are how a session begins) ---
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	// --- Customer dashboard ---
	dashboard := v1.Group("/dashboard", middleware.Guard(domain.NewAccessRule(domain.RoleCustomer)))
	dashboard.POST("/projects", projectHandler.Create)
	dashboard.GET("/projects", projectHandler.List)
	dashboard.GET("/projects/:id", projectHandler.Get)
	dashboard.POST("/projects/:id/submit", projectHandler.Submit)
	dashboard.POST("/projects/:id/assets", assetHandler.Register)
	dashboard.GET("/projects/:id/assets", assetHandler.ListForProject)
	dashboard.GET("/invoices", invoiceHandler.ListMine)
	dashboard.GET("/usage", usageHandler.Summary)
	dashboard.GET("/usage/history", usageHandler.History)

	// --- Videographer workspace ---
	vg := v1.Group("/videographer", middleware.Guard(domain.NewAccessRule(domain.RoleVideographer)))
	vg.GET("/projects", projectHandler.List)
	vg.GET("/projects/:id", projectHandler.Get)
	vg.PATCH("/projects/:id/status", projectHandler.SetStatus)
	vg.POST("/projects/:id/assets", assetHandler.Register)
	vg.GET("/projects/:id/assets", assetHandler.ListForProject)
	vg.GET("/payouts", payoutHandler.ListMine)
	vg.GET("/profile", videographerHandler.Profile)
	vg.PUT("/profile", videographerHandler.UpdateProfile)

	// --- Admin console ---
	admin := v1.Group("/admin", middleware.Guard(domain.NewAccessRule(domain.RoleAdmin)))
	admin.GET("/projects", projectHandler.List)
	admin.GET("/projects/:id", projectHandler.Get)
	admin.POST("/projects/:id/assign", projectHandler.Assign)
	admin.PATCH("/projects/:id/status", projectHandler.SetStatus)
	admin.GET("/projects/:id/assets", assetHandler.ListForProject)
	admin.DELETE("/assets/:id", assetHandler.Remove)
	admin.POST("/invoices", invoiceHandler.Create)
	admin.GET("/invoices", invoiceHandler.ListAll)
	admin.POST("/invoices/:id/pay", invoiceHandler.MarkPaid)
	admin.POST("/payouts", payoutHandler.Create)
	admin.GET("/payouts", payoutHandler.ListAll)
	admin.POST("/payouts/:id/approve", payoutHandler.Approve)
	admin.POST("/payouts/:id/pay", payoutHandler.MarkPaid)
	admin.POST("/tickets/:id/assign", ticketHandler.Assign)
	admin.PATCH("/tickets/:id/status", ticketHandler.SetStatus)
	admin.GET("/usage", usageHandler.Totals)
	admin.POST("/videographers", videographerHandler.Create)
	admin.GET("/videographers", videographerHandler.List)
	admin.GET("/videographers/:id", videographerHandler.Get)
	admin.GET("/logs", auditHandler.List)
	admin.GET("/toggles", toggleHandler.List)
	admin.PUT("/toggles/:name", toggleHandler.Set)

	// --- Support (any authenticated role) ---
	support := v1.Group("/support", middleware.Guard(domain.NewAccessRule(
		domain.RoleCustomer, domain.RoleVideographer, domain.RoleAdmin)))
	support.POST("/tickets", ticketHandler.Create)
	support.GET("/tickets", ticketHandler.List)

	return e
}
