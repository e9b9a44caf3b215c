package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/NovaBeautyTech/salon-manager/internal/audit"
	"github.com/NovaBeautyTech/salon-manager/internal/config"
	"github.com/NovaBeautyTech/salon-manager/internal/cron"
	"github.com/NovaBeautyTech/salon-manager/internal/handlers"
	infraCache "github.com/NovaBeautyTech/salon-manager/internal/infra/cache"
	infraRepo "github.com/NovaBeautyTech/salon-manager/internal/infra/repository"
	"github.com/NovaBeautyTech/salon-manager/internal/middleware"
	"github.com/NovaBeautyTech/salon-manager/internal/sms"
	"github.com/NovaBeautyTech/salon-manager/internal/storage"
	ucAppointment "github.com/NovaBeautyTech/salon-manager/internal/usecase/appointment"
	ucReminder "github.com/NovaBeautyTech/salon-manager/internal/usecase/reminder"
)

// RegisterRoutes wires the whole API and returns the reminder sweep so
// the caller can schedule it.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
) *cron.ReminderSweep {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(middleware.RequestLogger())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	reminderRepo := infraRepo.NewReminderGormRepository(db)
	availabilityCache := infraCache.NewAvailabilityCache(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var gateway sms.Gateway
	if cfg.TwilioEnabled() {
		gateway = sms.NewTwilioGateway(cfg)
	} else {
		gateway = sms.NewNoopGateway()
	}

	var mediaStore storage.MediaStore
	if cfg.S3Enabled() {
		mediaStore = storage.NewS3Store(cfg)
	}

	// ======================================================
	// USE CASES: reminders
	// ======================================================
	reminderLifecycle := ucReminder.NewLifecycle(reminderRepo)

	listQueueUC := ucReminder.NewListQueue(reminderRepo)
	markSmsSentUC := ucReminder.NewMarkSmsSent(reminderRepo, gateway, auditDispatcher)
	markCalledUC := ucReminder.NewMarkCalled(reminderRepo, auditDispatcher)
	linkAppointmentUC := ucReminder.NewLinkAppointment(reminderRepo, auditDispatcher)
	cancelReminderUC := ucReminder.NewCancelReminder(reminderRepo, auditDispatcher)

	// ======================================================
	// USE CASES: appointments
	// ======================================================
	proposeBookingUC := ucAppointment.NewProposeBooking(
		appointmentRepo,
		availabilityCache,
		auditDispatcher,
	)

	transitionStatusUC := ucAppointment.NewTransitionStatus(
		appointmentRepo,
		reminderLifecycle,
		availabilityCache,
		auditDispatcher,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availabilityCache,
	)

	listByDateUC := ucAppointment.NewListByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListByMonth(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	salonHandler := handlers.NewSalonHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	productHandler := handlers.NewProductHandler(db)
	transactionHandler := handlers.NewTransactionHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	avatarHandler := handlers.NewAvatarHandler(db, mediaStore)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		proposeBookingUC,
		transitionStatusUC,
		getAvailabilityUC,
		listByDateUC,
		listByMonthUC,
	)

	reminderHandler := handlers.NewReminderHandler(
		db,
		listQueueUC,
		markSmsSentUC,
		markCalledUC,
		linkAppointmentUC,
		cancelReminderUC,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		salon := api.Group("/salons/:salonID")
		{
			salon.GET("", salonHandler.Get)
			salon.PATCH("", salonHandler.Update)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			salon.GET("/clients", clientHandler.List)
			salon.POST("/clients", clientHandler.Create)
			salon.GET("/clients/:id", clientHandler.Get)
			salon.PATCH("/clients/:id", clientHandler.Update)
			salon.POST("/clients/:id/avatar", avatarHandler.UploadClientAvatar)

			// ------------------------------
			// SERVICES
			// ------------------------------
			salon.GET("/services", serviceHandler.List)
			salon.POST("/services", serviceHandler.Create)
			salon.PATCH("/services/:id", serviceHandler.Update)
			salon.GET("/service-categories", serviceHandler.ListCategories)
			salon.POST("/service-categories", serviceHandler.CreateCategory)
			salon.PATCH("/service-categories/:id", serviceHandler.UpdateCategory)

			// ------------------------------
			// STAFF
			// ------------------------------
			salon.GET("/staff", staffHandler.List)
			salon.POST("/staff", staffHandler.Create)
			salon.PATCH("/staff/:id", staffHandler.Update)
			salon.GET("/staff/:id/schedule", staffHandler.GetSchedule)
			salon.PUT("/staff/:id/schedule", staffHandler.UpdateSchedule)
			salon.POST("/staff/:id/avatar", avatarHandler.UploadStaffAvatar)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			salon.POST("/appointments", appointmentHandler.Create)
			salon.GET("/appointments", appointmentHandler.ListByDate)
			salon.GET("/appointments/month", appointmentHandler.ListByMonth)
			salon.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			salon.GET("/availability", appointmentHandler.Availability)

			// ------------------------------
			// REMINDERS
			// ------------------------------
			salon.GET("/reminders", reminderHandler.Queue)
			salon.PATCH("/reminders/:id/sms-sent", reminderHandler.MarkSmsSent)
			salon.PATCH("/reminders/:id/called", reminderHandler.MarkCalled)
			salon.PATCH("/reminders/:id/link", reminderHandler.Link)
			salon.PATCH("/reminders/:id/cancel", reminderHandler.Cancel)

			// ------------------------------
			// INVENTORY
			// ------------------------------
			salon.GET("/products", productHandler.List)
			salon.POST("/products", productHandler.Create)
			salon.PATCH("/products/:id", productHandler.Update)
			salon.PATCH("/products/:id/stock", productHandler.AdjustStock)

			// ------------------------------
			// FINANCE
			// ------------------------------
			salon.GET("/transactions", transactionHandler.List)
			salon.POST("/transactions", transactionHandler.Create)
			salon.GET("/transactions/summary", transactionHandler.Summary)

			// ------------------------------
			// DASHBOARD + AUDIT
			// ------------------------------
			salon.GET("/dashboard/today", dashboardHandler.Today)
			salon.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return cron.NewReminderSweep(reminderRepo, markSmsSentUC)
}
