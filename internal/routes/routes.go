package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/holiday"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucDayConfig "github.com/BruksfildServices01/salon-scheduler/internal/usecase/dayconfig"
)

// RegisterRoutes monta a API. O dispatcher devolvido precisa ser
// fechado no shutdown para não perder eventos de auditoria.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	cache catalog.Cache,
) (*audit.Dispatcher, error) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	calendar := holiday.NewCalendar()
	engine, err := availability.NewEngine(policy, calendar)
	if err != nil {
		return nil, err
	}

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	dayConfigRepo := infraRepo.NewDayConfigGormRepository(db)
	services := catalog.New(infraRepo.NewServiceGormRepository(db), cache)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	getDayViewUC := ucAppointment.NewGetDayView(engine, appointmentRepo, dayConfigRepo, services)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		engine,
		appointmentRepo,
		dayConfigRepo,
		services,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		engine,
		appointmentRepo,
		dayConfigRepo,
		services,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo, services)

	getDayConfigUC := ucDayConfig.NewGetDayConfig(dayConfigRepo)
	upsertDayConfigUC := ucDayConfig.NewUpsertDayConfig(dayConfigRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(getDayViewUC, calendar)
	dayConfigHandler := handlers.NewDayConfigHandler(getDayConfigUC, upsertDayConfigUC)
	scheduleHandler := handlers.NewScheduleHandler(engine)
	serviceHandler := handlers.NewServiceHandler(services)
	meHandler := handlers.NewMeHandler()

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsByDateUC,
	)

	publicHandler := handlers.NewPublicHandler(services, createAppointmentUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", availabilityHandler.Public)
			publicAPI.GET("/holidays", availabilityHandler.Holidays)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/schedule", scheduleHandler.Get)

			secured.GET("/days/:date", availabilityHandler.Day)
			secured.GET("/days/:date/config", dayConfigHandler.Get)
			secured.PATCH("/days/:date/config", dayConfigHandler.Patch)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return auditDispatcher, nil
}
