package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tripdesk/tripdesk-api/internal/application/auth"
	"github.com/tripdesk/tripdesk-api/internal/application/commission"
	"github.com/tripdesk/tripdesk-api/internal/application/usecase"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
)

// RouterDeps wires the handlers.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CommissionUC   *commission.UseCase
	UserUC         *usecase.UserUseCase
	CustomerUC     *usecase.CustomerUseCase
	TripUC         *usecase.TripUseCase
	LeadUC         *usecase.LeadUseCase
	BookingUC      *usecase.BookingUseCase
	TagUC          *usecase.TagUseCase
	TaskUC         *usecase.TaskUseCase
	NotificationUC *usecase.NotificationUseCase
	Users          userSource
	Store          objectFetcher
	JWTSecret      string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public entry points)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/verify-email", authHandler.VerifyEmail)

	// Everything below requires a live session. The middleware re-reads the
	// account row, so deactivation cuts access immediately.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	commissionHandler := NewCommissionHandler(deps.CommissionUC)
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/change-password", authHandler.ChangePassword)
	protected.Post("/auth/change-email", authHandler.ChangeEmail)
	protected.Get("/auth/my-commission", commissionHandler.MyCommission)
	protected.Get("/auth/my-commission/pdf", commissionHandler.MyCommissionPDF)

	// Tags
	tags := protected.Group("/tags")
	tagHandler := NewTagHandler(deps.TagUC)
	tags.Get("/", tagHandler.List)
	tags.Post("/", tagHandler.Create)
	tags.Put("/:id", tagHandler.Update)
	tags.Delete("/:id", tagHandler.Delete)

	// Customers + passports
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/passports", customerHandler.ListPassports)
	customers.Post("/:id/passports", customerHandler.UpsertPassport)

	// Trips
	trips := protected.Group("/trips")
	tripHandler := NewTripHandler(deps.TripUC)
	trips.Post("/", tripHandler.Create)
	trips.Get("/", tripHandler.List)
	trips.Get("/:id", tripHandler.GetByID)
	trips.Put("/:id", tripHandler.Update)
	trips.Delete("/:id", tripHandler.Delete)

	// Leads
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Delete("/:id", leadHandler.Delete)

	// Bookings
	bookings := protected.Group("/bookings")
	bookingHandler := NewBookingHandler(deps.BookingUC)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Put("/:id", bookingHandler.Update)
	bookings.Delete("/:id", bookingHandler.Delete)

	// Tasks
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Notifications
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)

	// Image proxy
	imageHandler := NewImageHandler(deps.Store)
	protected.Get("/images/+", imageHandler.Serve)

	// Admin-only routes
	admin := protected.Group("/", RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin))

	users := admin.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Patch("/:id", userHandler.Patch)

	admin.Get("/commissions/:agentId", commissionHandler.AgentDetail)
}
