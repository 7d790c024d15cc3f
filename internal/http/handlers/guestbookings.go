package handlers

import (
	"net/http"

	intconfig "travelagent/internal/config"
	"travelagent/internal/http/middleware"
	"travelagent/internal/repositories"
	"travelagent/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/guest-bookings
//
// Registers a new customer and books them onto a flight in one transaction.
func CreateGuestBooking(c *gin.Context) {
	var req services.GuestBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.GuestBookingService{
		DB:        intconfig.DB,
		Customers: repositories.CustomerRepository{DB: intconfig.DB},
		Flights:   repositories.FlightRepository{DB: intconfig.DB},
		Bookings:  repositories.BookingRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}

	customer, booking, err := svc.Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"customer": customer,
		"booking":  booking,
	})
}
