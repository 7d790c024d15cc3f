package services

import (
	"context"
	"strings"
	"testing"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
	"travelagent/internal/remote"
)

type stubFlightBookings struct {
	nextID    int64
	createErr error
	deleteErr error
	active    map[int64]models.Booking
	deleted   []int64
	creates   int
}

func newStubFlightBookings() *stubFlightBookings {
	return &stubFlightBookings{nextID: 10, active: map[int64]models.Booking{}}
}

func (s *stubFlightBookings) Create(b models.Booking) (models.Booking, error) {
	s.creates++
	if s.createErr != nil {
		return models.Booking{}, s.createErr
	}
	s.nextID++
	b.ID = s.nextID
	s.active[b.ID] = b
	return b, nil
}

func (s *stubFlightBookings) Delete(id int64) error {
	s.deleted = append(s.deleted, id)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.active[id]; !ok {
		return domain.NotFoundError{Resource: "booking"}
	}
	delete(s.active, id)
	return nil
}

func (s *stubFlightBookings) ListByCustomer(customerID int64) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range s.active {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

type stubTravelStore struct {
	nextID    int64
	createErr error
	deleteErr error
	records   map[int64]models.TravelBooking
}

func newStubTravelStore() *stubTravelStore {
	return &stubTravelStore{nextID: 1000, records: map[int64]models.TravelBooking{}}
}

func (s *stubTravelStore) Create(tb models.TravelBooking) (models.TravelBooking, error) {
	if s.createErr != nil {
		return models.TravelBooking{}, s.createErr
	}
	s.nextID++
	tb.ID = s.nextID
	s.records[tb.ID] = tb
	return tb, nil
}

func (s *stubTravelStore) GetByID(id int64) (models.TravelBooking, error) {
	tb, ok := s.records[id]
	if !ok {
		return tb, domain.NotFoundError{Resource: "travel booking"}
	}
	return tb, nil
}

func (s *stubTravelStore) List() ([]models.TravelBooking, error) {
	out := []models.TravelBooking{}
	for _, tb := range s.records {
		out = append(out, tb)
	}
	return out, nil
}

func (s *stubTravelStore) ListByCustomer(customerID int64) ([]models.TravelBooking, error) {
	out := []models.TravelBooking{}
	for _, tb := range s.records {
		if tb.CustomerID == customerID {
			out = append(out, tb)
		}
	}
	return out, nil
}

func (s *stubTravelStore) Delete(id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.records[id]; !ok {
		return domain.NotFoundError{Resource: "travel booking"}
	}
	delete(s.records, id)
	return nil
}

type stubCustomerFinder struct {
	err error
}

func (s stubCustomerFinder) GetByID(id int64) (models.Customer, error) {
	if s.err != nil {
		return models.Customer{}, s.err
	}
	return models.Customer{ID: id, Name: "Tester"}, nil
}

type agentFixture struct {
	svc     TravelAgentService
	flights *stubFlightBookings
	travel  *stubTravelStore
	hotels  *remote.FakeHotelService
	taxis   *remote.FakeTaxiService
}

func newAgentFixture() agentFixture {
	flights := newStubFlightBookings()
	travel := newStubTravelStore()
	hotels := remote.NewFakeHotelService()
	taxis := remote.NewFakeTaxiService()
	return agentFixture{
		svc: TravelAgentService{
			Bookings:     flights,
			Travel:       travel,
			Customers:    stubCustomerFinder{},
			Hotels:       hotels,
			Taxis:        taxis,
			HotelAccount: models.Customer{ID: 5, Name: "Travel Agent"},
			TaxiAccount:  models.Customer{ID: 30003, Name: "Travel Agent"},
		},
		flights: flights,
		travel:  travel,
		hotels:  hotels,
		taxis:   taxis,
	}
}

func validRequest() TravelBookingRequest {
	return TravelBookingRequest{
		CustomerID:  1,
		FlightID:    7,
		Hotel:       &models.Hotel{Name: "Grand Plaza", PhoneNumber: "01234567890", Postcode: "AB1 2CD"},
		Taxi:        &models.Taxi{Reg: "TX99 ABC", Seats: 4},
		BookingDate: "2030-06-15",
	}
}

func TestTravelAgentCreateHappyPath(t *testing.T) {
	fx := newAgentFixture()

	created, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected a persisted id")
	}
	if created.FlightBookingID == 0 || created.HotelBookingID == 0 || created.TaxiBookingID == 0 {
		t.Fatalf("expected all three sub-booking ids, got %+v", created)
	}
	if len(fx.flights.active) != 1 {
		t.Fatalf("expected one flight booking, got %d", len(fx.flights.active))
	}

	hotelBookings, _ := fx.hotels.ListBookings(context.Background())
	if len(hotelBookings) != 1 {
		t.Fatalf("expected one hotel booking, got %d", len(hotelBookings))
	}
	if hotelBookings[0].Customer.ID != 5 {
		t.Fatalf("hotel booking should be under the service account, got customer %d", hotelBookings[0].Customer.ID)
	}
	taxiBookings, _ := fx.taxis.ListBookings(context.Background())
	if len(taxiBookings) != 1 {
		t.Fatalf("expected one taxi booking, got %d", len(taxiBookings))
	}
	if taxiBookings[0].Customer.ID != 30003 {
		t.Fatalf("taxi booking should be under the service account, got customer %d", taxiBookings[0].Customer.ID)
	}
}

func TestTravelAgentCreatePersistsEchoedDescriptions(t *testing.T) {
	fx := newAgentFixture()
	fx.hotels.Echo = &models.Hotel{ID: 42, Name: "Grand Plaza Deluxe", PhoneNumber: "09876543210", Postcode: "ZZ9 9ZZ"}
	fx.taxis.Echo = &models.Taxi{ID: 77, Reg: "TX00 XYZ", Seats: 6}

	created, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if created.Hotel.Name != "Grand Plaza Deluxe" {
		t.Fatalf("provider-echoed hotel should win, got %q", created.Hotel.Name)
	}
	if created.Taxi.Reg != "TX00 XYZ" || created.Taxi.Seats != 6 {
		t.Fatalf("provider-echoed taxi should win, got %+v", created.Taxi)
	}

	stored, err := fx.travel.GetByID(created.ID)
	if err != nil {
		t.Fatalf("stored record missing: %v", err)
	}
	if stored.Hotel != created.Hotel || stored.Taxi != created.Taxi {
		t.Fatalf("stored snapshot differs from response")
	}
}

func TestTravelAgentCreateIncompleteRequestHasNoSideEffects(t *testing.T) {
	fx := newAgentFixture()

	for name, mutate := range map[string]func(*TravelBookingRequest){
		"missing flight": func(r *TravelBookingRequest) { r.FlightID = 0 },
		"missing hotel":  func(r *TravelBookingRequest) { r.Hotel = nil },
		"missing taxi":   func(r *TravelBookingRequest) { r.Taxi = nil },
	} {
		req := validRequest()
		mutate(&req)
		if _, err := fx.svc.CreateBooking(context.Background(), req); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}

	if fx.flights.creates != 0 || fx.hotels.CreateCalls != 0 || fx.taxis.CreateCalls != 0 {
		t.Fatalf("incomplete requests must not reach any booking step")
	}
}

func TestTravelAgentCreateFlightFailureSkipsRemotes(t *testing.T) {
	fx := newAgentFixture()
	fx.flights.createErr = domain.ConflictError{Resource: "booking", Msg: "booking already exists"}

	_, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if fx.hotels.CreateCalls != 0 || fx.taxis.CreateCalls != 0 {
		t.Fatalf("no remote call should happen when the flight booking fails")
	}
}

func TestTravelAgentCreateHotelFailureCompensatesFlight(t *testing.T) {
	fx := newAgentFixture()
	fx.hotels.CreateErr = domain.RemoteError{Service: "hotel", Kind: domain.RemoteUnavailable}

	_, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if !domain.IsRemoteKind(err, domain.RemoteUnavailable) {
		t.Fatalf("expected the hotel failure to surface, got %v", err)
	}
	if fx.taxis.CreateCalls != 0 {
		t.Fatalf("taxi step must not run after the hotel step failed")
	}
	if len(fx.flights.active) != 0 {
		t.Fatalf("flight booking should have been compensated")
	}
	if len(fx.flights.deleted) != 1 {
		t.Fatalf("expected exactly one flight compensation, got %d", len(fx.flights.deleted))
	}
}

func TestTravelAgentCreateTaxiFailureCompensatesHotelAndFlight(t *testing.T) {
	fx := newAgentFixture()
	fx.taxis.CreateErr = domain.RemoteError{Service: "taxi", Kind: domain.RemoteConflict, Status: 409}

	_, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if !domain.IsRemoteKind(err, domain.RemoteConflict) {
		t.Fatalf("expected the taxi failure to surface, got %v", err)
	}

	hotelBookings, _ := fx.hotels.ListBookings(context.Background())
	if len(hotelBookings) != 0 {
		t.Fatalf("hotel booking should have been compensated, %d left", len(hotelBookings))
	}
	if len(fx.flights.active) != 0 {
		t.Fatalf("flight booking should have been compensated")
	}
}

func TestTravelAgentCreatePersistFailureCompensatesEverything(t *testing.T) {
	fx := newAgentFixture()
	fx.travel.createErr = domain.InternalError{Msg: "insert failed"}

	_, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}

	hotelBookings, _ := fx.hotels.ListBookings(context.Background())
	taxiBookings, _ := fx.taxis.ListBookings(context.Background())
	if len(hotelBookings) != 0 || len(taxiBookings) != 0 || len(fx.flights.active) != 0 {
		t.Fatalf("all three sub-bookings should have been compensated")
	}
}

func TestTravelAgentCompensationFailureReportsEveryFailure(t *testing.T) {
	fx := newAgentFixture()
	fx.taxis.CreateErr = domain.RemoteError{Service: "taxi", Kind: domain.RemoteUnavailable}
	fx.hotels.DeleteErr = domain.RemoteError{Service: "hotel", Kind: domain.RemoteUnavailable}
	fx.flights.deleteErr = domain.InternalError{Msg: "delete failed"}

	_, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if !domain.IsCompensation(err) {
		t.Fatalf("expected compensation error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "hotel booking") || !strings.Contains(msg, "flight booking") {
		t.Fatalf("compensation error should report every failed undo, got %q", msg)
	}
	// both compensations were attempted despite the first one failing
	if fx.hotels.DeleteCalls != 1 || len(fx.flights.deleted) != 1 {
		t.Fatalf("compensation must keep going past failures")
	}
}

func TestTravelAgentDeleteRemovesLocalThenRemote(t *testing.T) {
	fx := newAgentFixture()
	created, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("setup create failed: %v", err)
	}

	if err := fx.svc.DeleteBooking(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteBooking returned error: %v", err)
	}

	if _, err := fx.travel.GetByID(created.ID); !domain.IsNotFound(err) {
		t.Fatalf("local record should be gone")
	}
	hotelBookings, _ := fx.hotels.ListBookings(context.Background())
	taxiBookings, _ := fx.taxis.ListBookings(context.Background())
	if len(hotelBookings) != 0 || len(taxiBookings) != 0 {
		t.Fatalf("remote bookings should be gone after delete")
	}

	if err := fx.svc.DeleteBooking(context.Background(), created.ID); !domain.IsNotFound(err) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}

func TestTravelAgentDeleteUnknownBookingTouchesNothing(t *testing.T) {
	fx := newAgentFixture()

	err := fx.svc.DeleteBooking(context.Background(), 9999)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if fx.hotels.DeleteCalls != 0 || fx.taxis.DeleteCalls != 0 {
		t.Fatalf("no remote delete should happen for an unknown booking")
	}
}

func TestTravelAgentDeleteLocalFailureLeavesRemotesAlone(t *testing.T) {
	fx := newAgentFixture()
	created, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("setup create failed: %v", err)
	}
	fx.travel.deleteErr = domain.InternalError{Msg: "delete failed"}

	if err := fx.svc.DeleteBooking(context.Background(), created.ID); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	hotelBookings, _ := fx.hotels.ListBookings(context.Background())
	taxiBookings, _ := fx.taxis.ListBookings(context.Background())
	if len(hotelBookings) != 1 || len(taxiBookings) != 1 {
		t.Fatalf("remote bookings must stay when the local delete fails, so a retry is safe")
	}
}

func TestTravelAgentDeleteToleratesRemoteAlreadyGone(t *testing.T) {
	fx := newAgentFixture()
	created, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("setup create failed: %v", err)
	}

	// the providers lost both bookings out of band
	_ = fx.hotels.DeleteBooking(context.Background(), created.HotelBookingID)
	_ = fx.taxis.DeleteBooking(context.Background(), created.TaxiBookingID)

	if err := fx.svc.DeleteBooking(context.Background(), created.ID); err != nil {
		t.Fatalf("already-gone remote bookings should count as deleted, got %v", err)
	}
	if _, err := fx.travel.GetByID(created.ID); !domain.IsNotFound(err) {
		t.Fatalf("local record should be gone")
	}
}

func TestTravelAgentDeleteSurfacesOrphanedRemotes(t *testing.T) {
	fx := newAgentFixture()
	created, err := fx.svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("setup create failed: %v", err)
	}
	fx.hotels.DeleteErr = domain.RemoteError{Service: "hotel", Kind: domain.RemoteUnavailable}

	err = fx.svc.DeleteBooking(context.Background(), created.ID)
	if err == nil {
		t.Fatalf("expected the orphaned hotel booking to be reported")
	}
	if _, getErr := fx.travel.GetByID(created.ID); !domain.IsNotFound(getErr) {
		t.Fatalf("the local delete is irreversible; the record must stay gone")
	}
	// the taxi delete still ran
	taxiBookings, _ := fx.taxis.ListBookings(context.Background())
	if len(taxiBookings) != 0 {
		t.Fatalf("taxi delete should have been attempted regardless")
	}
	// the orphaned hotel booking remains visible on the provider side
	hotelBookings, _ := fx.hotels.ListBookings(context.Background())
	if len(hotelBookings) != 1 {
		t.Fatalf("expected the hotel booking to remain as an orphan, got %d", len(hotelBookings))
	}
}

func TestTravelAgentListByCustomerChecksCustomer(t *testing.T) {
	fx := newAgentFixture()
	fx.svc.Customers = stubCustomerFinder{err: domain.NotFoundError{Resource: "customer"}}

	if _, err := fx.svc.ListBookingsByCustomer(42); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for unknown customer, got %v", err)
	}
}
