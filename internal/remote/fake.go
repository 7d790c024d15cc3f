package remote

import (
	"context"
	"sync"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
)

// FakeHotelService is the in-memory stand-in for the remote hotel provider,
// selected by dependency wiring in tests. Failure knobs script the next
// outcome; Echo overrides the confirmed hotel description the way a real
// provider may normalize what it was sent.
type FakeHotelService struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]HotelBooking

	Hotels      []models.Hotel
	Echo        *models.Hotel
	CreateErr   error
	DeleteErr   error
	CreateCalls int
	DeleteCalls int
}

func NewFakeHotelService() *FakeHotelService {
	return &FakeHotelService{nextID: 100, bookings: map[int64]HotelBooking{}}
}

func (f *FakeHotelService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Hotel{}, f.Hotels...), nil
}

func (f *FakeHotelService) ListBookings(ctx context.Context) ([]HotelBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []HotelBooking{}
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *FakeHotelService) CreateBooking(ctx context.Context, b HotelBooking) (HotelBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateErr != nil {
		return HotelBooking{}, f.CreateErr
	}
	f.nextID++
	b.ID = f.nextID
	if f.Echo != nil {
		b.Hotel = *f.Echo
	}
	f.bookings[b.ID] = b
	return b, nil
}

func (f *FakeHotelService) DeleteBooking(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if _, ok := f.bookings[id]; !ok {
		return domain.RemoteError{Service: "hotel", Kind: domain.RemoteNotFound, Status: 404}
	}
	delete(f.bookings, id)
	return nil
}

// FakeTaxiService mirrors FakeHotelService for the taxi provider.
type FakeTaxiService struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]TaxiBooking

	Taxis       []models.Taxi
	Echo        *models.Taxi
	CreateErr   error
	DeleteErr   error
	CreateCalls int
	DeleteCalls int
}

func NewFakeTaxiService() *FakeTaxiService {
	return &FakeTaxiService{nextID: 500, bookings: map[int64]TaxiBooking{}}
}

func (f *FakeTaxiService) ListTaxis(ctx context.Context) ([]models.Taxi, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Taxi{}, f.Taxis...), nil
}

func (f *FakeTaxiService) ListBookings(ctx context.Context) ([]TaxiBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []TaxiBooking{}
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *FakeTaxiService) CreateBooking(ctx context.Context, b TaxiBooking) (TaxiBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateErr != nil {
		return TaxiBooking{}, f.CreateErr
	}
	f.nextID++
	b.ID = f.nextID
	if f.Echo != nil {
		b.Taxi = *f.Echo
	}
	f.bookings[b.ID] = b
	return b, nil
}

func (f *FakeTaxiService) DeleteBooking(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if _, ok := f.bookings[id]; !ok {
		return domain.RemoteError{Service: "taxi", Kind: domain.RemoteNotFound, Status: 404}
	}
	delete(f.bookings, id)
	return nil
}
