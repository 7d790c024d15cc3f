package services

import (
	"regexp"
	"strings"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
	"travelagent/internal/utils"
)

var (
	nameRe         = regexp.MustCompile(`^[A-Za-z-' ]+$`)
	emailRe        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe        = regexp.MustCompile(`^0[0-9]{10}$`)
	flightNumberRe = regexp.MustCompile(`^[A-Za-z0-9]{5}$`)
	airportCodeRe  = regexp.MustCompile(`^[A-Z]{3}$`)
)

func validateCustomer(c models.Customer) error {
	name := strings.TrimSpace(c.Name)
	if name == "" || len(name) > 50 || !nameRe.MatchString(name) {
		return domain.ValidationError{Field: "name", Msg: "please use a name without numbers or specials, max 50 characters"}
	}
	if !emailRe.MatchString(strings.TrimSpace(c.Email)) {
		return domain.ValidationError{Field: "email", Msg: "the email address must be in the format of name@domain.com"}
	}
	if !phoneRe.MatchString(strings.TrimSpace(c.PhoneNumber)) {
		return domain.ValidationError{Field: "phoneNumber", Msg: "phone number must start with 0 and be 11 digits long"}
	}
	return nil
}

func validateFlight(f models.Flight) error {
	if !flightNumberRe.MatchString(f.Number) {
		return domain.ValidationError{Field: "number", Msg: "flight number must be a non-empty alpha-numerical string which is 5 characters in length"}
	}
	if !airportCodeRe.MatchString(f.Departure) {
		return domain.ValidationError{Field: "departure", Msg: "flight departure must be an upper case alphabetical string, 3 characters in length"}
	}
	if !airportCodeRe.MatchString(f.Destination) {
		return domain.ValidationError{Field: "destination", Msg: "flight destination must be an upper case alphabetical string, 3 characters in length"}
	}
	if f.Departure == f.Destination {
		return domain.ValidationError{Field: "destination", Msg: "flight destination must differ from departure"}
	}
	return nil
}

func validateBookingDate(date string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return domain.ValidationError{Field: "bookingDate", Msg: "booking date must be in YYYY-MM-DD format", Err: err}
	}
	if !utils.IsFutureDate(date) {
		return domain.ValidationError{Field: "bookingDate", Msg: "booking date must be in the future"}
	}
	return nil
}
