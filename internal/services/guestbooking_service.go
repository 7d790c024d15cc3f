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

// GuestBookingRequest registers a brand-new customer and books them onto a
// flight in one shot.
type GuestBookingRequest struct {
	Customer    models.Customer `json:"customer"`
	FlightID    int64           `json:"flightId"`
	BookingDate string          `json:"bookingDate"`
}

// GuestBookingService creates the customer and their flight booking inside
// one local transaction: if the booking cannot be made, the customer is not
// kept either.
type GuestBookingService struct {
	DB        *sql.DB
	Customers repositories.CustomerRepository
	Flights   repositories.FlightRepository
	Bookings  repositories.BookingRepository
	RequestID string
}

func (s GuestBookingService) Create(req GuestBookingRequest) (models.Customer, models.Booking, error) {
	var (
		customer models.Customer
		booking  models.Booking
	)

	if err := validateCustomer(req.Customer); err != nil {
		return customer, booking, err
	}
	if req.FlightID <= 0 {
		return customer, booking, domain.ValidationError{Field: "flightId", Msg: "flight id is required"}
	}
	if err := validateBookingDate(req.BookingDate); err != nil {
		return customer, booking, err
	}

	if _, err := s.Flights.GetByID(req.FlightID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customer, booking, domain.NotFoundError{Resource: "flight", Err: err}
		}
		return customer, booking, domain.InternalError{Err: err}
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return customer, booking, domain.InternalError{Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	customer, err = s.Customers.CreateIn(tx, req.Customer)
	if err != nil {
		if domain.IsConflict(err) {
			return customer, booking, err
		}
		return customer, booking, domain.InternalError{Err: err}
	}

	if _, found, err := s.Bookings.FindByFlightAndDateIn(tx, req.FlightID, req.BookingDate); err != nil {
		return customer, booking, domain.InternalError{Err: err}
	} else if found {
		return customer, booking, domain.ConflictError{Resource: "booking", Msg: "booking already exists"}
	}

	booking, err = s.Bookings.CreateIn(tx, models.Booking{
		CustomerID:  customer.ID,
		FlightID:    req.FlightID,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		if domain.IsConflict(err) {
			return customer, booking, err
		}
		return customer, booking, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return customer, booking, domain.InternalError{Err: err}
	}
	committed = true

	utils.LogEvent(s.RequestID, "guestbooking", "create",
		fmt.Sprintf("customer_id=%d booking_id=%d", customer.ID, booking.ID))
	return customer, booking, nil
}
