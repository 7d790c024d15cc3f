package models

// Booking links one customer to one flight on one date. At most one booking
// may exist per (flight, date) pair. Dates are YYYY-MM-DD strings.
type Booking struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customerId"`
	FlightID    int64   `json:"flightId"`
	BookingDate string  `json:"bookingDate"`
	Flight      *Flight `json:"flight,omitempty"`
}
