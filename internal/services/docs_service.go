package services

import (
	"bytes"
	"fmt"
	"strings"

	"travelagent/internal/domain/models"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the itinerary PDF for a travel booking. Loader can be
// injected in tests to bypass the store.
type DocsService struct {
	Travel    TravelBookings
	RequestID string
	Loader    func(int64) (models.TravelBooking, error)
}

func (s DocsService) GenerateItinerary(travelBookingID int64) ([]byte, string, error) {
	tb, err := s.load(travelBookingID)
	if err != nil {
		return nil, "", err
	}
	return buildItineraryPDF(tb)
}

func (s DocsService) load(id int64) (models.TravelBooking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.Travel.GetByID(id)
}

func buildItineraryPDF(tb models.TravelBooking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travel Itinerary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVEL ITINERARY")
	pdf.Ln(12)

	flightNumber, route := "-", "-"
	if tb.Flight != nil {
		flightNumber = tb.Flight.Number
		route = fmt.Sprintf("%s -> %s", tb.Flight.Departure, tb.Flight.Destination)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref    : TRV-%d", tb.ID),
		fmt.Sprintf("Date           : %s", safe(tb.BookingDate, "-")),
		fmt.Sprintf("Flight         : %s", safe(flightNumber, "-")),
		fmt.Sprintf("Route          : %s", route),
		fmt.Sprintf("Hotel          : %s", safe(tb.Hotel.Name, "-")),
		fmt.Sprintf("Hotel Phone    : %s", safe(tb.Hotel.PhoneNumber, "-")),
		fmt.Sprintf("Hotel Postcode : %s", safe(tb.Hotel.Postcode, "-")),
		fmt.Sprintf("Taxi Reg       : %s", safe(tb.Taxi.Reg, "-")),
		fmt.Sprintf("Taxi Seats     : %d", tb.Taxi.Seats),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "The hotel and taxi parts of this itinerary are held with external providers under the bookings referenced above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%d.pdf", tb.ID)
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
