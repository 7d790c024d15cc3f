package models

// Flight is a bookable commodity. Number is unique; departure and
// destination are three-letter codes and must differ.
type Flight struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
}
