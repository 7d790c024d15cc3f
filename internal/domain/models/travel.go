package models

// Hotel describes the hotel part of a travel booking. It is an embedded
// snapshot of what the remote hotel service confirmed, not a foreign key.
type Hotel struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Postcode    string `json:"postcode"`
}

// Taxi describes the taxi part of a travel booking, snapshotted the same
// way as Hotel.
type Taxi struct {
	ID    int64  `json:"id,omitempty"`
	Reg   string `json:"reg"`
	Seats int    `json:"seats"`
}

// TravelBooking is the composite record persisted only after the flight,
// hotel and taxi sub-bookings have all been confirmed. It owns its flight
// booking exclusively: deleting the travel booking deletes the flight
// booking too. HotelBookingID and TaxiBookingID are identifiers returned by
// the remote services and are never fabricated locally.
type TravelBooking struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	BookingDate     string  `json:"bookingDate"`
	FlightBookingID int64   `json:"flightBookingId"`
	HotelBookingID  int64   `json:"hotelBookingId"`
	TaxiBookingID   int64   `json:"taxiBookingId"`
	Hotel           Hotel   `json:"hotel"`
	Taxi            Taxi    `json:"taxi"`

	// Flight is resolved from the referenced flight booking at read time.
	Flight *Flight `json:"flight,omitempty"`
}

// User is an API account for the backoffice endpoints.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}
