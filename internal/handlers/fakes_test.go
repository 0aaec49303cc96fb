package handlers

import (
	"context"

	"github.com/perla-resort/booking-api/internal/config"
	"github.com/perla-resort/booking-api/internal/models"
	"github.com/perla-resort/booking-api/internal/notifier"
)

type fakeAPI struct {
	offers    []models.PriceOffer
	offersErr error

	createResp *models.ReservationResponse
	createErr  error
	updateResp *models.UpdateReservationResponse
	updateErr  error

	priceCalls  int
	createCalls int
	updateCalls int

	lastCreate models.ReservationRequest
	lastUpdate models.UpdateReservationRequest
}

func (f *fakeAPI) PriceOffers(context.Context, models.SearchParams, string, string) ([]models.PriceOffer, error) {
	f.priceCalls++
	return f.offers, f.offersErr
}

func (f *fakeAPI) CreateReservation(_ context.Context, req models.ReservationRequest) (*models.ReservationResponse, error) {
	f.createCalls++
	f.lastCreate = req
	return f.createResp, f.createErr
}

func (f *fakeAPI) UpdateReservation(_ context.Context, req models.UpdateReservationRequest) (*models.UpdateReservationResponse, error) {
	f.updateCalls++
	f.lastUpdate = req
	return f.updateResp, f.updateErr
}

type fakeCatalog struct {
	hotel    *models.Hotel
	defs     *models.Definitions
	hotelErr error
	defsErr  error
}

func (f *fakeCatalog) Hotel(context.Context, string) (*models.Hotel, error) {
	return f.hotel, f.hotelErr
}

func (f *fakeCatalog) Definitions(context.Context, string) (*models.Definitions, error) {
	return f.defs, f.defsErr
}

type fakeNotifier struct {
	events []notifier.ReservationEvent
}

func (f *fakeNotifier) NotifyReservation(event notifier.ReservationEvent) error {
	f.events = append(f.events, event)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		BookingAPIURL:   "https://bookingapi.example.com",
		BookingAPIToken: "test-token",
		HotelID:         23155,
		DefaultLanguage: "TR",
		DefaultCurrency: "TRY",
	}
}
