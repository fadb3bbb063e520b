package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/BruksfildServices01/calendar-booking/internal/audit"
	"github.com/BruksfildServices01/calendar-booking/internal/config"
	"github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/handlers"
	"github.com/BruksfildServices01/calendar-booking/internal/middleware"
	"github.com/BruksfildServices01/calendar-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/calendar-booking/internal/usecase/booking"
)

// Deps are the singletons the HTTP layer is built from. Limiter is optional.
type Deps struct {
	Config   *config.Config
	Calendar booking.Calendar
	Auth     oauth2.TokenSource
	Clock    timezone.Clock
	Template []booking.Timeslot
	Audit    *audit.Dispatcher
	Limiter  *middleware.RateLimiter
	Logger   *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Logger),
		middleware.CORSMiddleware(d.Config.CORSOrigins),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	getBookableDaysUC := ucBooking.NewGetBookableDays(d.Calendar, d.Clock)
	getAvailableTimeslotsUC := ucBooking.NewGetAvailableTimeslots(d.Calendar, d.Clock)
	bookAppointmentUC := ucBooking.NewBookAppointment(d.Calendar, d.Clock, d.Audit)
	initTimeslotsUC := ucBooking.NewInitTimeslots(d.Calendar, d.Clock, d.Template, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		getBookableDaysUC,
		getAvailableTimeslotsUC,
		bookAppointmentUC,
		d.Logger,
	)
	adminHandler := handlers.NewAdminHandler(d.Config, initTimeslotsUC, d.Logger)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	calendar := r.Group("/")
	calendar.Use(middleware.Authorization(d.Auth))
	{
		calendar.GET("/days", bookingHandler.Days)
		calendar.GET("/timeslots", bookingHandler.Timeslots)

		book := []gin.HandlerFunc{bookingHandler.Book}
		if d.Limiter != nil {
			book = append([]gin.HandlerFunc{d.Limiter.Middleware()}, book...)
		}
		calendar.POST("/book", book...)
	}

	if !d.Config.AdminEnabled() {
		d.Logger.Warn("admin routes disabled: JWT_SECRET and ADMIN_PASSWORD_HASH must be set")
		return
	}

	r.POST("/admin/login", adminHandler.Login)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(d.Config), middleware.Authorization(d.Auth))
	{
		admin.POST("/timeslots/init", adminHandler.InitTimeslots)
	}
}
