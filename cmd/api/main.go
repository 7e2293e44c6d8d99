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

	"github.com/tripdesk/tripdesk-api/internal/application/auth"
	"github.com/tripdesk/tripdesk-api/internal/application/commission"
	"github.com/tripdesk/tripdesk-api/internal/application/usecase"
	"github.com/tripdesk/tripdesk-api/internal/infrastructure/email"
	infrapdf "github.com/tripdesk/tripdesk-api/internal/infrastructure/pdf"
	"github.com/tripdesk/tripdesk-api/internal/infrastructure/postgres"
	"github.com/tripdesk/tripdesk-api/internal/infrastructure/storage"
	httpRouter "github.com/tripdesk/tripdesk-api/internal/interfaces/http"
	"github.com/tripdesk/tripdesk-api/pkg/config"
	"github.com/tripdesk/tripdesk-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	passportRepo := postgres.NewPassportRepository(pool)
	tripRepo := postgres.NewTripRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	commissionRepo := postgres.NewCommissionRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailSender := email.NewMailgunSender(cfg.Mail, log)

	store, err := storage.NewS3Client(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage client")
	}

	pdfGenerator := infrapdf.NewMarotoStatementGenerator()

	authUC := auth.NewAuthUseCase(userRepo, mailSender, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Mail.BaseURL)
	commissionUC := commission.NewUseCase(userRepo, bookingRepo, commissionRepo, pdfGenerator)
	userUC := usecase.NewUserUseCase(userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, passportRepo, txRunner)
	tripUC := usecase.NewTripUseCase(tripRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo, customerRepo, userRepo)
	bookingUC := usecase.NewBookingUseCase(bookingRepo, leadRepo, tripRepo, userRepo, commissionRepo)
	tagUC := usecase.NewTagUseCase(tagRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)

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
		Title:    "TripDesk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CommissionUC:   commissionUC,
		UserUC:         userUC,
		CustomerUC:     customerUC,
		TripUC:         tripUC,
		LeadUC:         leadUC,
		BookingUC:      bookingUC,
		TagUC:          tagUC,
		TaskUC:         taskUC,
		NotificationUC: notificationUC,
		Users:          userRepo,
		Store:          store,
		JWTSecret:      cfg.JWT.Secret,
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
