package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/perla-resort/booking-api/internal/booking"
	"github.com/perla-resort/booking-api/internal/config"
	"github.com/perla-resort/booking-api/internal/elektra"
	"github.com/perla-resort/booking-api/internal/models"
	"github.com/perla-resort/booking-api/internal/notifier"
)

type ReservationHandler struct {
	api      BookingAPI
	notifier notifier.Notifier
	cfg      *config.Config
	logger   *slog.Logger
}

func NewReservationHandler(api BookingAPI, notifier notifier.Notifier, cfg *config.Config, logger *slog.Logger) *ReservationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReservationHandler{api: api, notifier: notifier, cfg: cfg, logger: logger}
}

// ReservationOutcome is shared by the create and update endpoints. The
// price-changed and price-stale conditions are structured outcomes, not
// plain errors, so the UI can offer an explicit re-confirm action.
type ReservationOutcome struct {
	Success       bool    `json:"success"`
	ReservationID int     `json:"reservationId,omitempty"`
	FinalPrice    float64 `json:"finalPrice,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Message       string  `json:"message,omitempty"`
	Error         string  `json:"error,omitempty"`
	PriceChanged  bool    `json:"priceChanged,omitempty"`
	PriceError    bool    `json:"priceError,omitempty"`
	OldPrice      float64 `json:"oldPrice,omitempty"`
	NewPrice      float64 `json:"newPrice,omitempty"`
}

type CreateReservationRequest struct {
	Body struct {
		SelectedOffer models.PriceOffer      `json:"selectedOffer"`
		SearchParams  models.SearchParams    `json:"searchParams"`
		FormData      models.ReservationForm `json:"formData"`
	}
}

type CreateReservationResponse struct {
	Status int
	Body   ReservationOutcome
}

func (h *ReservationHandler) HandleCreateReservation(ctx context.Context, input *CreateReservationRequest) (*CreateReservationResponse, error) {
	offer := input.Body.SelectedOffer
	searchParams := input.Body.SearchParams
	form := input.Body.FormData

	// No offer context means the guest navigated here without picking
	// an offer. That is an explicit state routed back to search, not
	// something to paper over with synthesized data.
	if offer.RoomTypeID == 0 || offer.DiscountedPrice == 0 {
		return nil, huma.Error400BadRequest("No offer selected. Please run a search and pick an offer first.")
	}
	if len(form.Guests) == 0 {
		return nil, huma.Error400BadRequest("At least one guest is required")
	}

	// 1. Reconcile the price against a fresh quote. This must complete
	// before anything is submitted.
	reconciled, err := booking.Reconcile(ctx, h.api, offer, searchParams, h.cfg.DefaultLanguage)
	if err != nil {
		var priceChanged *booking.PriceChangedError
		switch {
		case errors.As(err, &priceChanged):
			h.logger.WarnContext(ctx, "price changed beyond tolerance",
				slog.Float64("old", priceChanged.OldPrice),
				slog.Float64("new", priceChanged.NewPrice))
			return &CreateReservationResponse{
				Status: http.StatusConflict,
				Body: ReservationOutcome{
					Error:        "Price change detected",
					PriceChanged: true,
					OldPrice:     priceChanged.OldPrice,
					NewPrice:     priceChanged.NewPrice,
					Currency:     priceChanged.NewCurrency,
					Message:      "The price has changed since the offer was selected. Please confirm the new price.",
				},
			}, nil
		case errors.Is(err, booking.ErrOfferGone):
			return &CreateReservationResponse{
				Status: http.StatusConflict,
				Body: ReservationOutcome{
					Error:   "Selected room is no longer available. Please run a new search.",
					Message: "Selected room is no longer available. Please run a new search.",
				},
			}, nil
		default:
			h.logger.ErrorContext(ctx, "failed to fetch fresh prices", slog.Any("error", err))
			return nil, huma.Error500InternalServerError("Could not verify the current price. Please try again.")
		}
	}

	// 2. Assemble the reservation command from the reconciled offer.
	request, err := booking.BuildCreate(reconciled, searchParams, form)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	// 3. Submit.
	result, err := h.api.CreateReservation(ctx, request)
	if err != nil {
		if elektra.IsPriceQuoteError(err) {
			return &CreateReservationResponse{
				Status: http.StatusConflict,
				Body: ReservationOutcome{
					Error:      "Price information is out of date",
					PriceError: true,
					Message:    "Prices may have changed. Please refresh the page and try again.",
				},
			}, nil
		}
		h.logger.ErrorContext(ctx, "reservation creation failed", slog.Any("error", err))
		return nil, huma.Error500InternalServerError("Failed to create reservation: " + err.Error())
	}

	h.notify(ctx, result.ReservationID, false, reconciled, searchParams, form)

	return &CreateReservationResponse{
		Status: http.StatusOK,
		Body: ReservationOutcome{
			Success:       true,
			ReservationID: result.ReservationID,
			FinalPrice:    reconciled.DiscountedPrice,
			Currency:      reconciled.Currency,
			Message:       "Reservation created successfully",
		},
	}, nil
}

type UpdateReservationRequest struct {
	Body struct {
		SelectedOffer models.PriceOffer            `json:"selectedOffer"`
		SearchParams  models.SearchParams          `json:"searchParams"`
		FormData      models.UpdateReservationForm `json:"formData"`
		ReservationID int                          `json:"reservationId"`
	}
}

type UpdateReservationResponse struct {
	Status int
	Body   ReservationOutcome
}

func (h *ReservationHandler) HandleUpdateReservation(ctx context.Context, input *UpdateReservationRequest) (*UpdateReservationResponse, error) {
	offer := input.Body.SelectedOffer
	searchParams := input.Body.SearchParams
	form := input.Body.FormData

	if input.Body.ReservationID == 0 {
		return nil, huma.Error400BadRequest("reservationId is required")
	}
	if offer.RoomTypeID == 0 {
		return nil, huma.Error400BadRequest("No offer selected. Please run a search and pick an offer first.")
	}
	if len(form.Guests) == 0 {
		return nil, huma.Error400BadRequest("At least one guest is required")
	}

	// Updates deliberately skip price reconciliation: an existing
	// reservation keeps the price it was negotiated at, and the hotel
	// settles any difference out of band.
	request, err := booking.BuildUpdate(input.Body.ReservationID, offer, searchParams, form)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	result, err := h.api.UpdateReservation(ctx, request)
	if err != nil {
		h.logger.ErrorContext(ctx, "reservation update failed",
			slog.Int("reservation_id", input.Body.ReservationID), slog.Any("error", err))
		return nil, huma.Error500InternalServerError("Failed to update reservation: " + err.Error())
	}

	h.notify(ctx, result.ReservationID, true, offer, searchParams, form.ReservationForm)

	message := result.Message
	if message == "" {
		message = "Reservation updated successfully"
	}
	return &UpdateReservationResponse{
		Status: http.StatusOK,
		Body: ReservationOutcome{
			Success:       true,
			ReservationID: result.ReservationID,
			FinalPrice:    offer.DiscountedPrice,
			Currency:      offer.Currency,
			Message:       message,
		},
	}, nil
}

// notify pings the front-desk channel. The reservation is already
// accepted upstream at this point, so notification failures are logged
// and never fail the request.
func (h *ReservationHandler) notify(ctx context.Context, reservationID int, updated bool, offer models.PriceOffer, searchParams models.SearchParams, form models.ReservationForm) {
	if h.notifier == nil {
		return
	}
	event := notifier.ReservationEvent{
		ReservationID: reservationID,
		Updated:       updated,
		GuestName:     form.ContactFirstName + " " + form.ContactLastName,
		RoomType:      offer.RoomType,
		BoardType:     offer.BoardType,
		CheckIn:       searchParams.FromDate,
		CheckOut:      searchParams.ToDate,
		Adults:        searchParams.Adults,
		Children:      len(searchParams.Children),
		TotalPrice:    offer.DiscountedPrice,
		Currency:      offer.Currency,
	}
	if err := h.notifier.NotifyReservation(event); err != nil {
		h.logger.WarnContext(ctx, "failed to send reservation notification", slog.Any("error", err))
	}
}
