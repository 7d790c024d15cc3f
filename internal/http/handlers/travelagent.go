package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	intconfig "travelagent/internal/config"
	"travelagent/internal/domain/models"
	"travelagent/internal/http/middleware"
	"travelagent/internal/remote"
	"travelagent/internal/repositories"
	"travelagent/internal/services"

	"github.com/gin-gonic/gin"
)

// AgentDeps holds the process-wide travel agent wiring: the remote provider
// clients and the service accounts the remote sub-bookings are booked under.
type AgentDeps struct {
	Hotels       remote.HotelService
	Taxis        remote.TaxiService
	HotelAccount models.Customer
	TaxiAccount  models.Customer
}

var (
	agentMu   sync.RWMutex
	agentDeps AgentDeps
)

// Configure installs the travel agent dependencies; call before serving.
func Configure(deps AgentDeps) {
	agentMu.Lock()
	defer agentMu.Unlock()
	agentDeps = deps
}

func travelAgentService(c *gin.Context) services.TravelAgentService {
	agentMu.RLock()
	deps := agentDeps
	agentMu.RUnlock()

	reqID := middleware.GetRequestID(c)
	return services.TravelAgentService{
		Bookings: services.BookingService{
			DB:        intconfig.DB,
			Customers: repositories.CustomerRepository{DB: intconfig.DB},
			Flights:   repositories.FlightRepository{DB: intconfig.DB},
			Bookings:  repositories.BookingRepository{DB: intconfig.DB},
			RequestID: reqID,
		},
		Travel: repositories.TravelBookingRepository{DB: intconfig.DB},
		Customers: services.CustomerService{
			Customers: repositories.CustomerRepository{DB: intconfig.DB},
			RequestID: reqID,
		},
		Hotels:       deps.Hotels,
		Taxis:        deps.Taxis,
		HotelAccount: deps.HotelAccount,
		TaxiAccount:  deps.TaxiAccount,
		RequestID:    reqID,
	}
}

// GET /api/travel-agent/hotels
func AgentGetHotels(c *gin.Context) {
	hotels, err := travelAgentService(c).ListRemoteHotels(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GET /api/travel-agent/taxis
func AgentGetTaxis(c *gin.Context) {
	taxis, err := travelAgentService(c).ListRemoteTaxis(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, taxis)
}

// GET /api/travel-agent/flights
func AgentGetFlights(c *gin.Context) {
	GetFlights(c)
}

// GET /api/travel-agent/bookings?customer=ID
func AgentGetBookings(c *gin.Context) {
	svc := travelAgentService(c)

	if raw := strings.TrimSpace(c.Query("customer")); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || customerID <= 0 {
			respondError(c, http.StatusBadRequest, "invalid_customer_id", "invalid customer id", nil)
			return
		}
		list, err := svc.ListBookingsByCustomer(customerID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	list, err := svc.ListBookings()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/travel-agent/bookings/:id
func AgentGetBookingByID(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	tb, err := travelAgentService(c).GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tb)
}

// POST /api/travel-agent/bookings
func AgentCreateBooking(c *gin.Context) {
	var req services.TravelBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	created, err := travelAgentService(c).CreateBooking(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/travel-agent/bookings/:id
func AgentDeleteBooking(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	if err := travelAgentService(c).DeleteBooking(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/travel-agent/bookings/:id/itinerary returns the itinerary PDF (inline).
func AgentGetItineraryPDF(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		Travel:    repositories.TravelBookingRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateItinerary(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
