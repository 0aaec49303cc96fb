package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	"github.com/perla-resort/booking-api/internal/elektra"
	"github.com/perla-resort/booking-api/internal/models"
)

func selectedOffer() models.PriceOffer {
	return models.PriceOffer{
		ID:              "offer-1",
		HotelID:         23155,
		RoomTypeID:      4,
		RoomType:        "Deluxe",
		BoardTypeID:     2,
		BoardType:       "All Inclusive",
		RateTypeID:      7,
		RateCodeID:      31,
		PriceAgencyID:   9,
		Price:           1200,
		DiscountedPrice: 1000,
		Currency:        "EUR",
	}
}

func reservationSearch() models.SearchParams {
	return models.SearchParams{
		FromDate: "2026-09-10",
		ToDate:   "2026-09-14",
		Adults:   2,
		Children: []models.ChildAge{{Age: 5}},
	}
}

func reservationForm() models.ReservationForm {
	return models.ReservationForm{
		ContactFirstName: "Ayşe",
		ContactLastName:  "Demir",
		ContactEmail:     "ayse@example.com",
		Nationality:      "TR",
		Guests: []models.GuestForm{
			{Title: "mr", FirstName: "Mehmet", LastName: "Demir", Gender: "male"},
			{Title: "ms", FirstName: "Ayşe", LastName: "Demir", Gender: "female"},
		},
	}
}

func createInput(offer models.PriceOffer) *CreateReservationRequest {
	input := &CreateReservationRequest{}
	input.Body.SelectedOffer = offer
	input.Body.SearchParams = reservationSearch()
	input.Body.FormData = reservationForm()
	return input
}

func TestHandleCreateReservation(t *testing.T) {
	fresh := selectedOffer()
	fresh.DiscountedPrice = 1005 // within the 1% tolerance
	fresh.RoomToSell = 2

	api := &fakeAPI{
		offers:     []models.PriceOffer{fresh},
		createResp: &models.ReservationResponse{Success: true, ReservationID: 777},
	}
	notifications := &fakeNotifier{}
	handler := NewReservationHandler(api, notifications, testConfig(), nil)

	resp, err := handler.HandleCreateReservation(context.Background(), createInput(selectedOffer()))
	if err != nil {
		t.Fatalf("HandleCreateReservation returned error: %v", err)
	}

	if resp.Status != http.StatusOK || !resp.Body.Success {
		t.Fatalf("expected 200 success, got %d %+v", resp.Status, resp.Body)
	}
	if resp.Body.ReservationID != 777 {
		t.Errorf("expected reservation id 777, got %d", resp.Body.ReservationID)
	}
	if resp.Body.FinalPrice != 1005 {
		t.Errorf("final price must be the reconciled one, got %v", resp.Body.FinalPrice)
	}

	// Reconciliation ran exactly once and before the submit.
	if api.priceCalls != 1 || api.createCalls != 1 {
		t.Errorf("expected 1 price call and 1 create call, got %d/%d", api.priceCalls, api.createCalls)
	}
	if api.lastCreate.TotalPrice != 1005 {
		t.Errorf("submitted total price must be the fresh one, got %v", api.lastCreate.TotalPrice)
	}
	if api.lastCreate.PaymentType != models.PaymentTypeNotPaid {
		t.Errorf("payment type must be not-paid, got %d", api.lastCreate.PaymentType)
	}
	if api.lastCreate.RoomCount != 1 {
		t.Errorf("room count must be 1, got %d", api.lastCreate.RoomCount)
	}

	if len(notifications.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications.events))
	}
	if notifications.events[0].ReservationID != 777 || notifications.events[0].Updated {
		t.Errorf("unexpected notification: %+v", notifications.events[0])
	}
}

func TestHandleCreateReservationPriceChanged(t *testing.T) {
	fresh := selectedOffer()
	fresh.DiscountedPrice = 1100 // 10% drift

	api := &fakeAPI{offers: []models.PriceOffer{fresh}}
	handler := NewReservationHandler(api, nil, testConfig(), nil)

	resp, err := handler.HandleCreateReservation(context.Background(), createInput(selectedOffer()))
	if err != nil {
		t.Fatalf("price change is a structured outcome, not an error: %v", err)
	}

	if resp.Status != http.StatusConflict {
		t.Errorf("expected 409, got %d", resp.Status)
	}
	if !resp.Body.PriceChanged || resp.Body.Success {
		t.Errorf("expected priceChanged outcome, got %+v", resp.Body)
	}
	if resp.Body.OldPrice != 1000 || resp.Body.NewPrice != 1100 {
		t.Errorf("expected old 1000 / new 1100, got %v / %v", resp.Body.OldPrice, resp.Body.NewPrice)
	}
	if api.createCalls != 0 {
		t.Error("nothing may be submitted when the price changed")
	}
}

func TestHandleCreateReservationOfferGone(t *testing.T) {
	other := selectedOffer()
	other.BoardTypeID++ // different tariff

	api := &fakeAPI{offers: []models.PriceOffer{other}}
	handler := NewReservationHandler(api, nil, testConfig(), nil)

	resp, err := handler.HandleCreateReservation(context.Background(), createInput(selectedOffer()))
	if err != nil {
		t.Fatalf("offer-gone is a structured outcome, not an error: %v", err)
	}
	if resp.Status != http.StatusConflict || resp.Body.Success {
		t.Errorf("expected 409 failure, got %d %+v", resp.Status, resp.Body)
	}
	if api.createCalls != 0 {
		t.Error("nothing may be submitted when the offer is gone")
	}
}

func TestHandleCreateReservationReconcileFetchFailure(t *testing.T) {
	api := &fakeAPI{offersErr: errors.New("upstream down")}
	handler := NewReservationHandler(api, nil, testConfig(), nil)

	_, err := handler.HandleCreateReservation(context.Background(), createInput(selectedOffer()))
	if err == nil {
		t.Fatal("expected error when the fresh quote cannot be fetched")
	}
	var statusErr huma.StatusError
	if !errors.As(err, &statusErr) || statusErr.GetStatus() != 500 {
		t.Errorf("expected 500, got %v", err)
	}
	if api.createCalls != 0 {
		t.Error("nothing may be submitted without a completed reconciliation")
	}
}

func TestHandleCreateReservationPriceQuoteRejection(t *testing.T) {
	api := &fakeAPI{
		offers:    []models.PriceOffer{selectedOffer()},
		createErr: &elektra.APIError{StatusCode: 400, Status: "400 Bad Request", Body: "the price quote has expired"},
	}
	handler := NewReservationHandler(api, nil, testConfig(), nil)

	resp, err := handler.HandleCreateReservation(context.Background(), createInput(selectedOffer()))
	if err != nil {
		t.Fatalf("price-quote rejection is a structured outcome: %v", err)
	}
	if resp.Status != http.StatusConflict || !resp.Body.PriceError {
		t.Errorf("expected 409 priceError, got %d %+v", resp.Status, resp.Body)
	}
}

func TestHandleCreateReservationGenericSubmitFailure(t *testing.T) {
	api := &fakeAPI{
		offers:    []models.PriceOffer{selectedOffer()},
		createErr: errors.New("internal vendor error"),
	}
	handler := NewReservationHandler(api, nil, testConfig(), nil)

	_, err := handler.HandleCreateReservation(context.Background(), createInput(selectedOffer()))
	if err == nil {
		t.Fatal("expected error for generic submit failure")
	}
	var statusErr huma.StatusError
	if !errors.As(err, &statusErr) || statusErr.GetStatus() != 500 {
		t.Errorf("expected 500, got %v", err)
	}
}

func TestHandleCreateReservationNoOfferSelected(t *testing.T) {
	api := &fakeAPI{}
	handler := NewReservationHandler(api, nil, testConfig(), nil)

	_, err := handler.HandleCreateReservation(context.Background(), createInput(models.PriceOffer{}))
	if err == nil {
		t.Fatal("expected error when no offer is selected")
	}
	var statusErr huma.StatusError
	if !errors.As(err, &statusErr) || statusErr.GetStatus() != 400 {
		t.Errorf("expected 400, got %v", err)
	}
	if api.priceCalls != 0 {
		t.Error("no upstream call may happen without a selected offer")
	}
}

func TestHandleUpdateReservationSkipsReconciliation(t *testing.T) {
	api := &fakeAPI{
		updateResp: &models.UpdateReservationResponse{Success: true, ReservationID: 4242, Message: "updated"},
	}
	notifications := &fakeNotifier{}
	handler := NewReservationHandler(api, notifications, testConfig(), nil)

	input := &UpdateReservationRequest{}
	input.Body.SelectedOffer = selectedOffer()
	input.Body.SearchParams = reservationSearch()
	input.Body.FormData = models.UpdateReservationForm{
		ReservationForm: reservationForm(),
		VoucherNo:       "V-1",
	}
	input.Body.ReservationID = 4242

	resp, err := handler.HandleUpdateReservation(context.Background(), input)
	if err != nil {
		t.Fatalf("HandleUpdateReservation returned error: %v", err)
	}

	if resp.Status != http.StatusOK || !resp.Body.Success {
		t.Fatalf("expected 200 success, got %d %+v", resp.Status, resp.Body)
	}
	if resp.Body.Message != "updated" {
		t.Errorf("upstream message must pass through, got %q", resp.Body.Message)
	}

	// The update path keeps the negotiated price: no fresh quote.
	if api.priceCalls != 0 {
		t.Errorf("update must not reconcile prices, got %d price calls", api.priceCalls)
	}
	if api.lastUpdate.ReservationID != 4242 || api.lastUpdate.VoucherNo != "V-1" {
		t.Errorf("unexpected update request: %+v", api.lastUpdate)
	}
	if api.lastUpdate.TotalPrice != 1000 {
		t.Errorf("update must submit the offer price as-is, got %v", api.lastUpdate.TotalPrice)
	}

	if len(notifications.events) != 1 || !notifications.events[0].Updated {
		t.Errorf("expected an update notification, got %+v", notifications.events)
	}
}

func TestHandleUpdateReservationRequiresID(t *testing.T) {
	handler := NewReservationHandler(&fakeAPI{}, nil, testConfig(), nil)

	input := &UpdateReservationRequest{}
	input.Body.SelectedOffer = selectedOffer()
	input.Body.SearchParams = reservationSearch()
	input.Body.FormData = models.UpdateReservationForm{ReservationForm: reservationForm()}

	if _, err := handler.HandleUpdateReservation(context.Background(), input); err == nil {
		t.Fatal("expected error for missing reservation id")
	}
}

func TestHandleUpdateReservationUpstreamFailure(t *testing.T) {
	api := &fakeAPI{updateErr: errors.New("vendor rejected")}
	handler := NewReservationHandler(api, nil, testConfig(), nil)

	input := &UpdateReservationRequest{}
	input.Body.SelectedOffer = selectedOffer()
	input.Body.SearchParams = reservationSearch()
	input.Body.FormData = models.UpdateReservationForm{ReservationForm: reservationForm()}
	input.Body.ReservationID = 4242

	_, err := handler.HandleUpdateReservation(context.Background(), input)
	if err == nil {
		t.Fatal("expected error when the upstream rejects the update")
	}
	var statusErr huma.StatusError
	if !errors.As(err, &statusErr) || statusErr.GetStatus() != 500 {
		t.Errorf("expected 500, got %v", err)
	}
}
