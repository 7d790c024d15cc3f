package services

import (
	"testing"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
	"travelagent/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		DB:        db,
		Customers: repositories.CustomerRepository{DB: db},
		Flights:   repositories.FlightRepository{DB: db},
		Bookings:  repositories.BookingRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func expectCustomerLookup(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectQuery("SELECT id, name, email, phone_number FROM customers WHERE id=").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone_number"}).
			AddRow(id, "Tester", "tester@example.com", "01234567890"))
}

func expectFlightLookup(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectQuery("SELECT id, number, departure, destination FROM flights WHERE id=").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "departure", "destination"}).
			AddRow(id, "BA123", "LHR", "JFK"))
}

func TestBookingCreateCommitsInOneTransaction(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	expectCustomerLookup(mock, 1)
	expectFlightLookup(mock, 7)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, customer_id, flight_id, DATE_FORMAT").
		WithArgs(int64(7), "2030-06-15").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "flight_id", "booking_date"}))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(1), int64(7), "2030-06-15").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	created, err := svc.Create(models.Booking{CustomerID: 1, FlightID: 7, BookingDate: "2030-06-15"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("expected id 11, got %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateRejectsOccupiedSlot(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	expectCustomerLookup(mock, 1)
	expectFlightLookup(mock, 7)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, customer_id, flight_id, DATE_FORMAT").
		WithArgs(int64(7), "2030-06-15").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "flight_id", "booking_date"}).
			AddRow(3, 2, 7, "2030-06-15"))
	mock.ExpectRollback()

	_, err := svc.Create(models.Booking{CustomerID: 1, FlightID: 7, BookingDate: "2030-06-15"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateUnknownCustomer(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("SELECT id, name, email, phone_number FROM customers WHERE id=").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone_number"}))

	_, err := svc.Create(models.Booking{CustomerID: 99, FlightID: 7, BookingDate: "2030-06-15"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingCreateRejectsPastDate(t *testing.T) {
	svc, _, done := newBookingService(t)
	defer done()

	_, err := svc.Create(models.Booking{CustomerID: 1, FlightID: 7, BookingDate: "2020-01-01"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
