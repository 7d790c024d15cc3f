package services

import (
	"database/sql"
	"errors"
	"fmt"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
	"travelagent/internal/repositories"
	"travelagent/internal/utils"
)

type FlightService struct {
	Flights   repositories.FlightRepository
	RequestID string
}

func (s FlightService) List() ([]models.Flight, error) {
	list, err := s.Flights.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (s FlightService) GetByID(id int64) (models.Flight, error) {
	f, err := s.Flights.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return f, domain.NotFoundError{Resource: "flight", Err: err}
	}
	if err != nil {
		return f, domain.InternalError{Err: err}
	}
	return f, nil
}

func (s FlightService) Create(f models.Flight) (models.Flight, error) {
	if err := validateFlight(f); err != nil {
		return f, err
	}
	created, err := s.Flights.Create(f)
	if err != nil {
		if domain.IsConflict(err) {
			return f, err
		}
		return f, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "flight", "create", fmt.Sprintf("flight_id=%d number=%s", created.ID, created.Number))
	return created, nil
}

// Delete removes the flight and, through the FK cascade, every booking on
// it.
func (s FlightService) Delete(id int64) error {
	if err := s.Flights.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "flight", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "flight", "delete", fmt.Sprintf("flight_id=%d", id))
	return nil
}
