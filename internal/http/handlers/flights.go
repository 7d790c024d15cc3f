package handlers

import (
	"net/http"

	intconfig "travelagent/internal/config"
	"travelagent/internal/domain/models"
	"travelagent/internal/http/middleware"
	"travelagent/internal/repositories"
	"travelagent/internal/services"

	"github.com/gin-gonic/gin"
)

func flightService(c *gin.Context) services.FlightService {
	return services.FlightService{
		Flights:   repositories.FlightRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/flights
func GetFlights(c *gin.Context) {
	list, err := flightService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/flights/:id
func GetFlightByID(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	flight, err := flightService(c).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// POST /api/flights
func CreateFlight(c *gin.Context) {
	var payload models.Flight
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = 0
	created, err := flightService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/flights/:id
func DeleteFlight(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	if err := flightService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
