package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/trackops/assettrack-api/internal/application/analytics"
	"github.com/trackops/assettrack-api/internal/application/auth"
	"github.com/trackops/assettrack-api/internal/application/report"
	"github.com/trackops/assettrack-api/internal/application/usecase"
	"github.com/trackops/assettrack-api/internal/infrastructure/mail"
	"github.com/trackops/assettrack-api/internal/infrastructure/mongodb"
	infrapdf "github.com/trackops/assettrack-api/internal/infrastructure/pdf"
	httpRouter "github.com/trackops/assettrack-api/internal/interfaces/http"
	"github.com/trackops/assettrack-api/pkg/config"
	"github.com/trackops/assettrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("MongoDB connection")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("MongoDB disconnect")
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	userRepo := mongodb.NewUserRepository(db)
	assetRepo := mongodb.NewAssetRepository(db)
	movementRepo := mongodb.NewMovementRepository(db)
	maintenanceRepo := mongodb.NewMaintenanceRepository(db)
	dashboardRepo := mongodb.NewDashboardRepository(db)

	mailer := mail.NewSMTPMailer(cfg.Mail)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Mail.ResetURL)
	userUC := usecase.NewUserUseCase(userRepo)
	assetUC := usecase.NewAssetUseCase(assetRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo, assetRepo)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, assetRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo)
	reportUC := report.NewReportUseCase(movementRepo, maintenanceRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AssetTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		AssetUC:       assetUC,
		MovementUC:    movementUC,
		MaintenanceUC: maintenanceUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
