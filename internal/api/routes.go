package api

import (
	"log/slog"
	"net/http"
	"time"

	"arena45/backend/internal/config"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Handlers groups every resource handler mounted by SetupRoutes.
type Handlers struct {
	Bookings     *BookingHandler
	Contacts     *ContactHandler
	Programs     *ProgramHandler
	Testimonials *TestimonialHandler
	Users        *UserHandler
	Stats        *StatsHandler
	Media        *MediaHandler
}

// SetupRoutes installs middleware and every route on router. Client IPs,
// and with them the rate limit keys, come from forwarding headers only
// when the peer is one of cfg.Server.TrustedProxies.
func SetupRoutes(router *gin.Engine, h Handlers, cfg config.Config, logger *slog.Logger) error {
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return errors.Wrap(err, "set trusted proxies")
	}

	router.Use(
		RequestID(),
		RequestLogger(logger),
		Recovery(logger, !cfg.IsProduction()),
		CORS(cfg.CORS),
	)

	limits := cfg.RateLimit
	bookingLimiter := RateLimit("bookings", cfg.BookingLimit(), limits.Period,
		"Too many booking attempts, please try again later.")
	contactLimiter := RateLimit("contacts", limits.Contact, limits.Period,
		"Too many contact submissions, please try again later.")
	// Register and login share one budget.
	userLimiter := RateLimit("users", limits.Users, limits.Period,
		"Too many user requests, please try again later.")

	router.GET("/", index)
	router.GET("/health", health)

	apiGroup := router.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			bookings.POST("", bookingLimiter, h.Bookings.CreateBooking)
			bookings.GET("", h.Bookings.ListBookings)
			bookings.GET("/:id", h.Bookings.GetBooking)
			bookings.PATCH("/:id", h.Bookings.UpdateBookingStatus)
			bookings.DELETE("/:id", h.Bookings.DeleteBooking)
		}

		contacts := apiGroup.Group("/contacts")
		{
			contacts.POST("", contactLimiter, h.Contacts.SubmitContact)
			contacts.GET("", h.Contacts.ListContacts)
			contacts.GET("/:id", h.Contacts.GetContact)
			contacts.PATCH("/:id", h.Contacts.UpdateContactStatus)
		}

		programs := apiGroup.Group("/programs")
		{
			programs.POST("", h.Programs.CreateProgram)
			programs.GET("", h.Programs.ListPrograms)
			// :id also accepts a slug here.
			programs.GET("/:id", h.Programs.GetProgram)
			programs.PATCH("/:id", h.Programs.UpdateProgram)
			programs.DELETE("/:id", h.Programs.DeleteProgram)
		}

		testimonials := apiGroup.Group("/testimonials")
		{
			testimonials.POST("", h.Testimonials.CreateTestimonial)
			testimonials.GET("", h.Testimonials.ListTestimonials)
			testimonials.GET("/:id", h.Testimonials.GetTestimonial)
			testimonials.PATCH("/:id", h.Testimonials.UpdateTestimonial)
			testimonials.DELETE("/:id", h.Testimonials.DeleteTestimonial)
		}

		users := apiGroup.Group("/users")
		{
			users.POST("/register", userLimiter, h.Users.Register)
			users.POST("/login", userLimiter, h.Users.Login)
			users.GET("", h.Users.ListUsers)
			users.GET("/:id", h.Users.GetUser)
			users.PATCH("/:id", h.Users.UpdateUser)
			users.DELETE("/:id", h.Users.DeleteUser)
		}

		stats := apiGroup.Group("/stats")
		{
			stats.GET("", h.Stats.Overview)
			stats.GET("/bookings", h.Stats.BookingStats)
		}

		media := apiGroup.Group("/media")
		{
			media.POST("/upload-url", h.Media.RequestUploadURL)
			media.DELETE("/:id", h.Media.DeleteMedia)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "Route not found")
	})
	return nil
}

// health godoc
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Arena 45 Backend API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to Arena 45 Backend API",
		"version": apiVersion,
		"endpoints": gin.H{
			"health":       "/health",
			"bookings":     "/api/bookings",
			"contacts":     "/api/contacts",
			"users":        "/api/users",
			"programs":     "/api/programs",
			"testimonials": "/api/testimonials",
			"stats":        "/api/stats",
			"media":        "/api/media/upload-url",
		},
	})
}
