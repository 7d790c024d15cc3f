package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelagent/internal/config"
	h "travelagent/internal/http/handlers"
	"travelagent/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Users (backoffice only)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth([]byte(env.JWTSecret)))
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)

		// Customers
		customers := api.Group("/customers")
		customers.GET("", h.GetCustomers)
		customers.GET("/:id", h.GetCustomerByID)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)

		// Flights
		flights := api.Group("/flights")
		flights.GET("", h.GetFlights)
		flights.GET("/:id", h.GetFlightByID)
		flights.POST("", h.CreateFlight)
		flights.DELETE("/:id", h.DeleteFlight)

		// Flight bookings
		bookings := api.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.POST("", h.CreateBooking)
		bookings.DELETE("/:id", h.DeleteBooking)

		// Guest bookings (customer + flight booking in one call)
		api.POST("/guest-bookings", h.CreateGuestBooking)

		// Travel agent (composite bookings across providers)
		agent := api.Group("/travel-agent")
		agent.GET("/hotels", h.AgentGetHotels)
		agent.GET("/taxis", h.AgentGetTaxis)
		agent.GET("/flights", h.AgentGetFlights)
		agent.GET("/bookings", h.AgentGetBookings)
		agent.GET("/bookings/:id", h.AgentGetBookingByID)
		agent.GET("/bookings/:id/itinerary", h.AgentGetItineraryPDF)
		agent.POST("/bookings", h.AgentCreateBooking)
		agent.DELETE("/bookings/:id", h.AgentDeleteBooking)
	}

	return r
}
