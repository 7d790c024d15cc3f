package repositories

import (
	"database/sql"
	"fmt"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
	"travelagent/internal/utils"
)

type BookingRepository struct {
	DB *sql.DB
}

const bookingSelect = `
	SELECT b.id, b.customer_id, b.flight_id, DATE_FORMAT(b.booking_date, '%Y-%m-%d'),
	       f.id, f.number, f.departure, f.destination
	FROM bookings b
	JOIN flights f ON f.id = b.flight_id
`

func scanBooking(row interface{ Scan(dest ...any) error }) (models.Booking, error) {
	var (
		b models.Booking
		f models.Flight
	)
	err := row.Scan(&b.ID, &b.CustomerID, &b.FlightID, &b.BookingDate,
		&f.ID, &f.Number, &f.Departure, &f.Destination)
	if err != nil {
		return b, err
	}
	b.Flight = &f
	return b, nil
}

func (r BookingRepository) List() ([]models.Booking, error) {
	return r.list(bookingSelect + ` ORDER BY b.id ASC`)
}

func (r BookingRepository) ListByCustomer(customerID int64) ([]models.Booking, error) {
	return r.list(bookingSelect+` WHERE b.customer_id=? ORDER BY b.id ASC`, customerID)
}

func (r BookingRepository) list(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	return scanBooking(r.DB.QueryRow(bookingSelect+` WHERE b.id=?`, id))
}

// FindByFlightAndDateIn looks up the booking occupying a (flight, date)
// slot inside the given transaction scope. More than one matching row is a
// data-integrity fault: it is logged and reported as an existing booking
// rather than propagated as an unrelated error.
func (r BookingRepository) FindByFlightAndDateIn(q DBTX, flightID int64, date string) (models.Booking, bool, error) {
	rows, err := q.Query(`SELECT id, customer_id, flight_id, DATE_FORMAT(booking_date, '%Y-%m-%d') FROM bookings WHERE flight_id=? AND booking_date=?`, flightID, date)
	if err != nil {
		return models.Booking{}, false, err
	}
	defer rows.Close()

	matches := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.FlightID, &b.BookingDate); err != nil {
			return models.Booking{}, false, err
		}
		matches = append(matches, b)
	}
	if err := rows.Err(); err != nil {
		return models.Booking{}, false, err
	}

	switch len(matches) {
	case 0:
		return models.Booking{}, false, nil
	case 1:
		return matches[0], true, nil
	default:
		utils.LogEvent("", "booking", "integrity",
			fmt.Sprintf("duplicate bookings found for flight_id=%d date=%s", flightID, date))
		return matches[0], true, nil
	}
}

// CreateIn inserts within the given transaction scope. A concurrent insert
// into the same (flight, date) slot surfaces as a ConflictError via the
// unique key.
func (r BookingRepository) CreateIn(q DBTX, b models.Booking) (models.Booking, error) {
	res, err := q.Exec(`INSERT INTO bookings (customer_id, flight_id, booking_date) VALUES (?,?,?)`,
		b.CustomerID, b.FlightID, b.BookingDate)
	if err != nil {
		if IsDuplicateKey(err) {
			return b, domain.ConflictError{Resource: "booking", Msg: "booking already exists", Err: err}
		}
		return b, err
	}
	b.ID, err = res.LastInsertId()
	return b, err
}

func (r BookingRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
