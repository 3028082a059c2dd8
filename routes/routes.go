package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"laundrybook/handlers"
	"laundrybook/utils"
)

// RegisterGeoRoutes registers the address-lookup endpoints.
func RegisterGeoRoutes(r *gin.Engine, gh *handlers.GeoHandler) {
	api := r.Group("/api/geo")
	{
		api.GET("/postcodes/:code", gh.ResolvePostcode)
		api.GET("/autocomplete", gh.Autocomplete)
		api.GET("/search", gh.SearchByAddress)
		api.GET("/hotels", gh.SearchHotels)
	}
}

// RegisterCatalogRoute registers the price-list endpoint.
func RegisterCatalogRoute(r *gin.Engine) {
	r.GET("/api/catalog", handlers.GetCatalog)
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", bh.StartSession)
		booking.GET("/session/:sessionID", bh.GetSession)
		booking.PATCH("/session/:sessionID", bh.UpdateSession)
		booking.DELETE("/session/:sessionID", bh.CancelSession)

		booking.POST("/session/:sessionID/services", bh.AddService)
		booking.DELETE("/session/:sessionID/services/:itemID", bh.RemoveService)

		booking.POST("/session/:sessionID/next", bh.NextPage)
		booking.POST("/session/:sessionID/back", bh.PrevPage)

		booking.POST("/session/:sessionID/payment-intent", bh.CreatePaymentIntent)
		booking.POST("/session/:sessionID/confirm", bh.ConfirmBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, gh *handlers.GeoHandler, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterGeoRoutes(r, gh)
	RegisterCatalogRoute(r)
	RegisterBookingRoutes(r, bh)
}
