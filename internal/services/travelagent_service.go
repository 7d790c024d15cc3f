package services

import (
	"context"
	"errors"
	"fmt"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
	"travelagent/internal/remote"
	"travelagent/internal/utils"
)

// FlightBookings is the slice of BookingService the coordinator needs.
type FlightBookings interface {
	Create(b models.Booking) (models.Booking, error)
	Delete(id int64) error
	ListByCustomer(customerID int64) ([]models.Booking, error)
}

// TravelBookings is the composite-record store. A travel booking exists
// locally iff all three sub-bookings were confirmed at creation time.
type TravelBookings interface {
	Create(tb models.TravelBooking) (models.TravelBooking, error)
	GetByID(id int64) (models.TravelBooking, error)
	List() ([]models.TravelBooking, error)
	ListByCustomer(customerID int64) ([]models.TravelBooking, error)
	Delete(id int64) error
}

// CustomerFinder resolves customers for the by-customer queries.
type CustomerFinder interface {
	GetByID(id int64) (models.Customer, error)
}

// TravelBookingRequest is the composite-booking input. Hotel and Taxi are
// descriptions of what to book remotely; the confirmed values echoed by the
// providers are what ends up persisted.
type TravelBookingRequest struct {
	CustomerID  int64         `json:"customerId"`
	FlightID    int64         `json:"flightId"`
	Hotel       *models.Hotel `json:"hotel"`
	Taxi        *models.Taxi  `json:"taxi"`
	BookingDate string        `json:"bookingDate"`
}

// TravelAgentService coordinates the booking saga across the local store
// and the two remote providers. Steps run strictly in order; compensation
// runs in strict reverse order and keeps going past individual failures.
// Remote sub-bookings are attributed to the configured service accounts,
// not to the travel customer.
type TravelAgentService struct {
	Bookings  FlightBookings
	Travel    TravelBookings
	Customers CustomerFinder
	Hotels    remote.HotelService
	Taxis     remote.TaxiService

	HotelAccount models.Customer
	TaxiAccount  models.Customer
	RequestID    string
}

// CreateBooking runs the create saga:
//
//	flight booking (local tx) -> hotel booking -> taxi booking -> composite record
//
// Any failure compensates everything already committed before surfacing the
// triggering error. If compensation itself fails, CompensationError is
// surfaced instead, carrying every compensation failure.
func (s TravelAgentService) CreateBooking(ctx context.Context, req TravelBookingRequest) (models.TravelBooking, error) {
	var none models.TravelBooking

	// Completeness checks happen before any side effect.
	if req.FlightID <= 0 {
		return none, domain.ValidationError{Field: "flightId", Msg: "flight is required"}
	}
	if req.Hotel == nil {
		return none, domain.ValidationError{Field: "hotel", Msg: "hotel is required"}
	}
	if req.Taxi == nil {
		return none, domain.ValidationError{Field: "taxi", Msg: "taxi is required"}
	}

	// Step A: local flight booking. Typed failures here mean nothing
	// external was committed, so there is nothing to compensate.
	flightBooking, err := s.Bookings.Create(models.Booking{
		CustomerID:  req.CustomerID,
		FlightID:    req.FlightID,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		return none, err
	}

	// Step B: hotel booking at the remote provider.
	hotelBooking, err := s.Hotels.CreateBooking(ctx, remote.HotelBooking{
		Customer:    s.HotelAccount,
		Hotel:       *req.Hotel,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		if cerr := s.compensate(ctx, 0, 0, flightBooking.ID); cerr != nil {
			return none, cerr
		}
		return none, err
	}

	// Step C: taxi booking at the remote provider.
	taxiBooking, err := s.Taxis.CreateBooking(ctx, remote.TaxiBooking{
		Customer:    s.TaxiAccount,
		Taxi:        *req.Taxi,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		if cerr := s.compensate(ctx, 0, hotelBooking.ID, flightBooking.ID); cerr != nil {
			return none, cerr
		}
		return none, err
	}

	// Step D: persist the composite record. The provider-echoed hotel and
	// taxi descriptions are authoritative over what the caller submitted.
	created, err := s.Travel.Create(models.TravelBooking{
		CustomerID:      req.CustomerID,
		BookingDate:     req.BookingDate,
		FlightBookingID: flightBooking.ID,
		HotelBookingID:  hotelBooking.ID,
		TaxiBookingID:   taxiBooking.ID,
		Hotel:           hotelBooking.Hotel,
		Taxi:            taxiBooking.Taxi,
	})
	if err != nil {
		if cerr := s.compensate(ctx, taxiBooking.ID, hotelBooking.ID, flightBooking.ID); cerr != nil {
			return none, cerr
		}
		return none, domain.InternalError{Msg: "could not persist travel booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "travelagent", "create",
		fmt.Sprintf("travel_booking_id=%d hotel_booking_id=%d taxi_booking_id=%d", created.ID, created.HotelBookingID, created.TaxiBookingID))
	return created, nil
}

// compensate undoes committed steps in reverse creation order: taxi, then
// hotel, then the local flight booking. A zero id means the step never
// committed. Failures do not stop the remaining compensations; every
// failure is reported. A remote booking that is already gone counts as
// compensated.
func (s TravelAgentService) compensate(ctx context.Context, taxiBookingID, hotelBookingID, flightBookingID int64) error {
	var failures []error

	if taxiBookingID != 0 {
		if err := s.Taxis.DeleteBooking(ctx, taxiBookingID); err != nil && !domain.IsRemoteKind(err, domain.RemoteNotFound) {
			failures = append(failures, fmt.Errorf("taxi booking %d: %w", taxiBookingID, err))
		}
	}
	if hotelBookingID != 0 {
		if err := s.Hotels.DeleteBooking(ctx, hotelBookingID); err != nil && !domain.IsRemoteKind(err, domain.RemoteNotFound) {
			failures = append(failures, fmt.Errorf("hotel booking %d: %w", hotelBookingID, err))
		}
	}
	if flightBookingID != 0 {
		if err := s.Bookings.Delete(flightBookingID); err != nil && !domain.IsNotFound(err) {
			failures = append(failures, fmt.Errorf("flight booking %d: %w", flightBookingID, err))
		}
	}

	if len(failures) > 0 {
		// A remote sub-booking may now exist with no local record
		// referencing it; operators must reconcile by hand.
		utils.LogEvent(s.RequestID, "travelagent", "compensation_failed",
			fmt.Sprintf("system may be inconsistent: %v", errors.Join(failures...)))
		return domain.CompensationError{Err: errors.Join(failures...)}
	}
	return nil
}

// DeleteBooking removes a travel booking. The local record (and the flight
// booking it owns) goes first; once that commit succeeds there is no way
// back, so remote cleanup failures are surfaced but never resurrect the
// local record. Both remote deletes are attempted regardless of the other's
// outcome, and a remote booking that is already gone counts as deleted.
func (s TravelAgentService) DeleteBooking(ctx context.Context, id int64) error {
	tb, err := s.Travel.GetByID(id)
	if err != nil {
		return err
	}

	// Local failure aborts before any remote call so a retry stays safe.
	if err := s.Travel.Delete(id); err != nil {
		return err
	}

	var failures []error
	if err := s.Hotels.DeleteBooking(ctx, tb.HotelBookingID); err != nil && !domain.IsRemoteKind(err, domain.RemoteNotFound) {
		failures = append(failures, fmt.Errorf("hotel booking %d: %w", tb.HotelBookingID, err))
	}
	if err := s.Taxis.DeleteBooking(ctx, tb.TaxiBookingID); err != nil && !domain.IsRemoteKind(err, domain.RemoteNotFound) {
		failures = append(failures, fmt.Errorf("taxi booking %d: %w", tb.TaxiBookingID, err))
	}

	if len(failures) > 0 {
		utils.LogEvent(s.RequestID, "travelagent", "orphaned_remote_booking",
			fmt.Sprintf("travel_booking_id=%d left remote bookings behind: %v", id, errors.Join(failures...)))
		return errors.Join(failures...)
	}

	utils.LogEvent(s.RequestID, "travelagent", "delete", fmt.Sprintf("travel_booking_id=%d", id))
	return nil
}

func (s TravelAgentService) GetBooking(id int64) (models.TravelBooking, error) {
	return s.Travel.GetByID(id)
}

func (s TravelAgentService) ListBookings() ([]models.TravelBooking, error) {
	return s.Travel.List()
}

func (s TravelAgentService) ListBookingsByCustomer(customerID int64) ([]models.TravelBooking, error) {
	if _, err := s.Customers.GetByID(customerID); err != nil {
		return nil, err
	}
	return s.Travel.ListByCustomer(customerID)
}

// ListRemoteHotels and ListRemoteTaxis pass the provider catalogues through
// so clients can browse what is bookable.
func (s TravelAgentService) ListRemoteHotels(ctx context.Context) ([]models.Hotel, error) {
	return s.Hotels.ListHotels(ctx)
}

func (s TravelAgentService) ListRemoteTaxis(ctx context.Context) ([]models.Taxi, error) {
	return s.Taxis.ListTaxis(ctx)
}
