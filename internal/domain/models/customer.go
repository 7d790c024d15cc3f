package models

// Customer is the identity anchor for bookings. Email is unique; deleting a
// customer cascades to their flight and travel bookings.
type Customer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
