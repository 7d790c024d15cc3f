// Package remote talks to the independently operated hotel and taxi booking
// providers. Every successful create or delete here is a real, billable
// action on a system outside this process, so callers must compensate
// whenever a later step of theirs fails.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"travelagent/internal/domain"
	"travelagent/internal/domain/models"
)

// HotelBooking is the wire representation used by the remote hotel service.
type HotelBooking struct {
	ID          int64           `json:"id,omitempty"`
	Customer    models.Customer `json:"customer"`
	Hotel       models.Hotel    `json:"hotel"`
	BookingDate string          `json:"bookingDate"`
}

// TaxiBooking is the wire representation used by the remote taxi service.
type TaxiBooking struct {
	ID          int64           `json:"id,omitempty"`
	Customer    models.Customer `json:"customer"`
	Taxi        models.Taxi     `json:"taxi"`
	BookingDate string          `json:"bookingDate"`
}

type HotelService interface {
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	ListBookings(ctx context.Context) ([]HotelBooking, error)
	CreateBooking(ctx context.Context, b HotelBooking) (HotelBooking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type TaxiService interface {
	ListTaxis(ctx context.Context) ([]models.Taxi, error)
	ListBookings(ctx context.Context) ([]TaxiBooking, error)
	CreateBooking(ctx context.Context, b TaxiBooking) (TaxiBooking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// client carries what both providers share: a base URL and the uniform
// outcome classification.
type client struct {
	service string
	baseURL string
	http    *http.Client
}

func newClient(service, baseURL string) client {
	return client{
		service: service,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// classify maps an HTTP status to the provider-independent error kinds.
// 2xx returns nil. Anything unrecognized counts as a remote outage.
func (c client) classify(status int) error {
	if status >= 200 && status < 300 {
		return nil
	}
	kind := domain.RemoteUnavailable
	switch status {
	case http.StatusBadRequest:
		kind = domain.RemoteBadInput
	case http.StatusConflict:
		kind = domain.RemoteConflict
	case http.StatusNotFound:
		kind = domain.RemoteNotFound
	}
	return domain.RemoteError{Service: c.service, Kind: kind, Status: status}
}

func (c client) unreachable(err error) error {
	return domain.RemoteError{Service: c.service, Kind: domain.RemoteUnavailable, Err: err}
}

func (c client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return c.unreachable(err)
	}
	defer res.Body.Close()

	if err := c.classify(res.StatusCode); err != nil {
		return err
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return c.unreachable(err)
	}
	defer res.Body.Close()

	if err := c.classify(res.StatusCode); err != nil {
		return err
	}
	// the echoed body is authoritative for what the provider committed to
	return json.NewDecoder(res.Body).Decode(out)
}

func (c client) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return c.unreachable(err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	return c.classify(res.StatusCode)
}

// HotelClient is the HTTP implementation of HotelService.
type HotelClient struct {
	client
}

func NewHotelClient(baseURL string) *HotelClient {
	return &HotelClient{client: newClient("hotel", baseURL)}
}

func (c *HotelClient) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	var out []models.Hotel
	err := c.getJSON(ctx, "/api/hotels", &out)
	return out, err
}

func (c *HotelClient) ListBookings(ctx context.Context) ([]HotelBooking, error) {
	var out []HotelBooking
	err := c.getJSON(ctx, "/api/bookings", &out)
	return out, err
}

func (c *HotelClient) CreateBooking(ctx context.Context, b HotelBooking) (HotelBooking, error) {
	var out HotelBooking
	err := c.postJSON(ctx, "/api/bookings", b, &out)
	return out, err
}

func (c *HotelClient) DeleteBooking(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/bookings/%d", id))
}

// TaxiClient is the HTTP implementation of TaxiService.
type TaxiClient struct {
	client
}

func NewTaxiClient(baseURL string) *TaxiClient {
	return &TaxiClient{client: newClient("taxi", baseURL)}
}

func (c *TaxiClient) ListTaxis(ctx context.Context) ([]models.Taxi, error) {
	var out []models.Taxi
	err := c.getJSON(ctx, "/api/taxis", &out)
	return out, err
}

func (c *TaxiClient) ListBookings(ctx context.Context) ([]TaxiBooking, error) {
	var out []TaxiBooking
	err := c.getJSON(ctx, "/api/bookings", &out)
	return out, err
}

func (c *TaxiClient) CreateBooking(ctx context.Context, b TaxiBooking) (TaxiBooking, error) {
	var out TaxiBooking
	err := c.postJSON(ctx, "/api/bookings", b, &out)
	return out, err
}

func (c *TaxiClient) DeleteBooking(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/bookings/%d", id))
}
