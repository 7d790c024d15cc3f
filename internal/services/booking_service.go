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

// BookingService owns the local flight-booking records. Validation order on
// create: field constraints, then customer existence, then flight
// existence, then the (flight, date) duplicate check.
type BookingService struct {
	DB        *sql.DB
	Customers repositories.CustomerRepository
	Flights   repositories.FlightRepository
	Bookings  repositories.BookingRepository
	RequestID string
}

func (s BookingService) List() ([]models.Booking, error) {
	list, err := s.Bookings.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (s BookingService) ListByCustomer(customerID int64) ([]models.Booking, error) {
	list, err := s.Bookings.ListByCustomer(customerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (s BookingService) GetByID(id int64) (models.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return b, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

func (s BookingService) Create(b models.Booking) (models.Booking, error) {
	if b.CustomerID <= 0 {
		return b, domain.ValidationError{Field: "customerId", Msg: "customer id is required"}
	}
	if b.FlightID <= 0 {
		return b, domain.ValidationError{Field: "flightId", Msg: "flight id is required"}
	}
	if err := validateBookingDate(b.BookingDate); err != nil {
		return b, err
	}

	if _, err := s.Customers.GetByID(b.CustomerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, domain.NotFoundError{Resource: "customer", Err: err}
		}
		return b, domain.InternalError{Err: err}
	}
	if _, err := s.Flights.GetByID(b.FlightID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, domain.NotFoundError{Resource: "flight", Err: err}
		}
		return b, domain.InternalError{Err: err}
	}

	// The duplicate check and insert share one transaction: this is the
	// local boundary of saga step A, never spanning remote calls.
	tx, err := s.DB.Begin()
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, found, err := s.Bookings.FindByFlightAndDateIn(tx, b.FlightID, b.BookingDate); err != nil {
		return b, domain.InternalError{Err: err}
	} else if found {
		return b, domain.ConflictError{Resource: "booking", Msg: "booking already exists"}
	}

	created, err := s.Bookings.CreateIn(tx, b)
	if err != nil {
		if domain.IsConflict(err) {
			return b, err
		}
		return b, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return b, domain.InternalError{Err: err}
	}
	committed = true

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d flight_id=%d date=%s", created.ID, created.FlightID, created.BookingDate))
	return created, nil
}

func (s BookingService) Delete(id int64) error {
	if err := s.Bookings.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "booking", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "delete", fmt.Sprintf("booking_id=%d", id))
	return nil
}
