package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "travelagent/internal/config"
	"travelagent/internal/domain/models"
	"travelagent/internal/http/middleware"
	"travelagent/internal/repositories"
	"travelagent/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		DB:        intconfig.DB,
		Customers: repositories.CustomerRepository{DB: intconfig.DB},
		Flights:   repositories.FlightRepository{DB: intconfig.DB},
		Bookings:  repositories.BookingRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/bookings?customer=ID
func GetBookings(c *gin.Context) {
	svc := bookingService(c)

	if raw := strings.TrimSpace(c.Query("customer")); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || customerID <= 0 {
			respondError(c, http.StatusBadRequest, "invalid_customer_id", "invalid customer id", nil)
			return
		}
		list, err := svc.ListByCustomer(customerID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	list, err := svc.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	booking, err := bookingService(c).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var payload models.Booking
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = 0
	created, err := bookingService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	if err := bookingService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
