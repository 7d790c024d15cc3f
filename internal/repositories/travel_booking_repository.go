package repositories

import (
	"database/sql"
	"errors"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
)

type TravelBookingRepository struct {
	DB *sql.DB
}

const travelBookingSelect = `
	SELECT tb.id, tb.customer_id, DATE_FORMAT(tb.booking_date, '%Y-%m-%d'),
	       tb.flight_booking_id, tb.hotel_booking_id, tb.taxi_booking_id,
	       tb.hotel_name, tb.hotel_phone_number, tb.hotel_postcode,
	       tb.taxi_reg, tb.taxi_seats,
	       f.id, f.number, f.departure, f.destination
	FROM travel_bookings tb
	JOIN bookings b ON b.id = tb.flight_booking_id
	JOIN flights f ON f.id = b.flight_id
`

func scanTravelBooking(row interface{ Scan(dest ...any) error }) (models.TravelBooking, error) {
	var (
		tb models.TravelBooking
		f  models.Flight
	)
	err := row.Scan(&tb.ID, &tb.CustomerID, &tb.BookingDate,
		&tb.FlightBookingID, &tb.HotelBookingID, &tb.TaxiBookingID,
		&tb.Hotel.Name, &tb.Hotel.PhoneNumber, &tb.Hotel.Postcode,
		&tb.Taxi.Reg, &tb.Taxi.Seats,
		&f.ID, &f.Number, &f.Departure, &f.Destination)
	if err != nil {
		return tb, err
	}
	tb.Flight = &f
	return tb, nil
}

func (r TravelBookingRepository) List() ([]models.TravelBooking, error) {
	return r.list(travelBookingSelect + ` ORDER BY tb.id ASC`)
}

func (r TravelBookingRepository) ListByCustomer(customerID int64) ([]models.TravelBooking, error) {
	return r.list(travelBookingSelect+` WHERE tb.customer_id=? ORDER BY tb.id ASC`, customerID)
}

func (r TravelBookingRepository) list(query string, args ...any) ([]models.TravelBooking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TravelBooking{}
	for rows.Next() {
		tb, err := scanTravelBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tb)
	}
	return out, rows.Err()
}

func (r TravelBookingRepository) GetByID(id int64) (models.TravelBooking, error) {
	tb, err := scanTravelBooking(r.DB.QueryRow(travelBookingSelect+` WHERE tb.id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return tb, domain.NotFoundError{Resource: "travel booking", Err: err}
	}
	return tb, err
}

func (r TravelBookingRepository) Create(tb models.TravelBooking) (models.TravelBooking, error) {
	res, err := r.DB.Exec(`INSERT INTO travel_bookings
		(customer_id, flight_booking_id, hotel_booking_id, taxi_booking_id,
		 hotel_name, hotel_phone_number, hotel_postcode, taxi_reg, taxi_seats, booking_date)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		tb.CustomerID, tb.FlightBookingID, tb.HotelBookingID, tb.TaxiBookingID,
		tb.Hotel.Name, tb.Hotel.PhoneNumber, tb.Hotel.Postcode,
		tb.Taxi.Reg, tb.Taxi.Seats, tb.BookingDate)
	if err != nil {
		if IsDuplicateKey(err) {
			return tb, domain.ConflictError{Resource: "travel booking", Msg: "flight booking already referenced", Err: err}
		}
		return tb, err
	}
	tb.ID, err = res.LastInsertId()
	return tb, err
}

// Delete removes the travel booking together with the flight booking it
// owns, in one transaction. Deleting the bookings row cascades the
// travel_bookings row through the FK.
func (r TravelBookingRepository) Delete(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var flightBookingID int64
	err = tx.QueryRow(`SELECT flight_booking_id FROM travel_bookings WHERE id=?`, id).Scan(&flightBookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "travel booking", Err: err}
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM bookings WHERE id=?`, flightBookingID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
