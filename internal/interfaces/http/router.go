package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trackops/assettrack-api/internal/application/analytics"
	"github.com/trackops/assettrack-api/internal/application/auth"
	"github.com/trackops/assettrack-api/internal/application/report"
	"github.com/trackops/assettrack-api/internal/application/usecase"
	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	AssetUC       *usecase.AssetUseCase
	MovementUC    *usecase.MovementUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	DashboardUC   *analytics.DashboardUseCase
	ReportUC      *report.ReportUseCase
	JWTSecret     string
}

// Router registers the API routes.
//
// Write access to assets, movements and maintenance needs an admin role;
// reads need any valid token. User deletion is reserved to super_admin, and
// profile reads/updates allow self access.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)
	selfOrAdmin := RequireSelfOrRole(entity.RoleAdmin, entity.RoleSuperAdmin)

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", selfOrAdmin, userHandler.GetByID)
	users.Put("/:id", selfOrAdmin, userHandler.Update)
	users.Patch("/:id", selfOrAdmin, userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleSuperAdmin), userHandler.Delete)

	// Assets
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assets.Post("/", adminOnly, assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", adminOnly, assetHandler.Update)
	assets.Patch("/:id", adminOnly, assetHandler.Update)
	assets.Delete("/:id", adminOnly, assetHandler.Delete)

	// Movements ("/report" must register before "/:id")
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.ReportUC)
	movements.Post("/", adminOnly, movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/report", movementHandler.Report)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", adminOnly, movementHandler.Update)
	movements.Patch("/:id", adminOnly, movementHandler.Update)
	movements.Delete("/:id", adminOnly, movementHandler.Delete)

	// Maintenance ("/records" must register before "/:id")
	maintenance := protected.Group("/maintenance")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC, deps.ReportUC)
	maintenance.Post("/", adminOnly, maintenanceHandler.Create)
	maintenance.Get("/", maintenanceHandler.List)
	maintenance.Get("/records", maintenanceHandler.Records)
	maintenance.Get("/:id", maintenanceHandler.GetByID)
	maintenance.Put("/:id", adminOnly, maintenanceHandler.Update)
	maintenance.Patch("/:id", adminOnly, maintenanceHandler.Update)
	maintenance.Delete("/:id", adminOnly, maintenanceHandler.Delete)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/counts", dashboardHandler.Counts)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
