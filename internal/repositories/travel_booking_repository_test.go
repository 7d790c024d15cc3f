package repositories

import (
	"testing"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTravelBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM travel_bookings tb").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := TravelBookingRepository{DB: db}
	if _, err := repo.GetByID(42); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTravelBookingDeleteRemovesOwnedFlightBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT flight_booking_id FROM travel_bookings WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"flight_booking_id"}).AddRow(11))
	mock.ExpectExec("DELETE FROM bookings WHERE id=").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := TravelBookingRepository{DB: db}
	if err := repo.Delete(9); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTravelBookingDeleteUnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT flight_booking_id FROM travel_bookings WHERE id=").
		WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"flight_booking_id"}))
	mock.ExpectRollback()

	repo := TravelBookingRepository{DB: db}
	if err := repo.Delete(77); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTravelBookingCreateStoresSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO travel_bookings").
		WithArgs(int64(1), int64(11), int64(101), int64(501),
			"Grand Plaza", "01234567890", "AB1 2CD", "TX99 ABC", 4, "2030-06-15").
		WillReturnResult(sqlmock.NewResult(1001, 1))

	repo := TravelBookingRepository{DB: db}
	created, err := repo.Create(models.TravelBooking{
		CustomerID:      1,
		BookingDate:     "2030-06-15",
		FlightBookingID: 11,
		HotelBookingID:  101,
		TaxiBookingID:   501,
		Hotel:           models.Hotel{Name: "Grand Plaza", PhoneNumber: "01234567890", Postcode: "AB1 2CD"},
		Taxi:            models.Taxi{Reg: "TX99 ABC", Seats: 4},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 1001 {
		t.Fatalf("expected id 1001, got %d", created.ID)
	}
}
