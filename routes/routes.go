package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"admin-backend/config"
	"admin-backend/controllers"
	"admin-backend/middleware"
)

// SetupRouter รับ Controller Instances เข้ามาเพื่อกำหนด Route
func SetupRouter(
	cfg config.App,
	db *gorm.DB,
	bc *controllers.BookingController,
	rc *controllers.RegistrationController,
	roc *controllers.RoomController,
	ctc *controllers.CustomerController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger("/health", "/metrics"))
	r.Use(middleware.Metrics())

	origins := cfg.CorsOriginList()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Localize(cfg.DefaultLocale))

	r.GET("/health", func(c *gin.Context) {
		dbHealthy := false
		if sqlDB, err := db.DB(); err == nil {
			dbHealthy = sqlDB.PingContext(c.Request.Context()) == nil
		}
		status := http.StatusOK
		if !dbHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "db": dbHealthy})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Bookings
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)

			// ? ต้องอยู่ก่อน /:id
			bookings.GET("/form", bc.GetBookingForm)

			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.PATCH("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		// Registrations
		registrations := api.Group("/registrations")
		{
			registrations.GET("", rc.GetRegistrations)
			registrations.POST("", rc.CreateRegistration)
			registrations.GET("/form", rc.GetRegistrationForm)
			registrations.GET("/stats", rc.GetRegistrationStats)

			registrations.GET("/:id/edit", rc.EditRegistration)
			registrations.PUT("/:id", rc.UpdateRegistration)
			registrations.PATCH("/:id", rc.UpdateRegistration)
			registrations.DELETE("/:id", rc.DeleteRegistration)
		}

		api.GET("/rooms", roc.GetRooms)
		api.GET("/room-types", roc.GetRoomTypes)
		api.GET("/customers", ctc.GetCustomers)
	}

	return r
}
