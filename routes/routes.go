package routes

import (
	"net/http"
	"time"

	"trimly/handlers"
	"trimly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
	Shop    *handlers.ShopHandler
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Booking.CreateBooking)
		api.PATCH("/:id/status", hb.Booking.UpdateBookingStatus)
		api.PATCH("/:id", hb.Booking.RescheduleBooking)
		api.GET("/user/:userId", hb.Booking.GetUserBookings)
		api.GET("/shop/:shopId", hb.Booking.GetShopBookings)
	}
}

// RegisterPaymentRoutes registers the manual payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/manual", hb.Payment.SubmitManualPayment)
		api.POST("/confirm/:bookingId", hb.Payment.ConfirmPayment)
		api.GET("/user/:userId", hb.Payment.GetUserPayments)
	}
}

// RegisterShopRoutes registers the public shop read endpoint.
func RegisterShopRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/shops")
	{
		api.GET("/:id", hb.Shop.GetShopByID)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Trimly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterShopRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
