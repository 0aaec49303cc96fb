package handlers

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/sync/errgroup"

	"github.com/perla-resort/booking-api/internal/config"
	"github.com/perla-resort/booking-api/internal/models"
	"github.com/perla-resort/booking-api/internal/pricing"
	"github.com/perla-resort/booking-api/internal/search"
)

// BookingAPI is the live slice of the upstream client: price quotes
// and reservation writes. Never cached.
type BookingAPI interface {
	PriceOffers(ctx context.Context, search models.SearchParams, currency, language string) ([]models.PriceOffer, error)
	CreateReservation(ctx context.Context, reservation models.ReservationRequest) (*models.ReservationResponse, error)
	UpdateReservation(ctx context.Context, reservation models.UpdateReservationRequest) (*models.UpdateReservationResponse, error)
}

type OffersHandler struct {
	api        BookingAPI
	catalog    Catalog
	normalizer *search.Normalizer
	cfg        *config.Config
	logger     *slog.Logger
}

func NewOffersHandler(api BookingAPI, catalog Catalog, cfg *config.Config, logger *slog.Logger) *OffersHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OffersHandler{
		api:        api,
		catalog:    catalog,
		normalizer: search.NewNormalizer(logger),
		cfg:        cfg,
		logger:     logger,
	}
}

// Search fields arrive as raw strings; the normalizer owns every
// parsing and range rule, including the silent child-age drops.
type OffersRequest struct {
	FromDate string `query:"fromdate" doc:"Check-in date, YYYY-MM-DD"`
	ToDate   string `query:"todate" doc:"Check-out date, YYYY-MM-DD"`
	Adult    string `query:"adult" doc:"Number of adults, 1-8, default 2"`
	Currency string `query:"currency" doc:"EUR, USD or TRY (legacy TL accepted)"`
	Child1   string `query:"child1" doc:"Age of first child, 1-17"`
	Child2   string `query:"child2"`
	Child3   string `query:"child3"`
	Child4   string `query:"child4"`
	Child5   string `query:"child5"`
	Child6   string `query:"child6"`
	Language string `query:"language"`
}

type OffersResponse struct {
	Body struct {
		SearchParams models.SearchParams         `json:"searchParams"`
		Currency     string                      `json:"currency"`
		Rooms        []models.RoomTypeWithPrices `json:"rooms"`
		PriceWarning string                      `json:"priceWarning,omitempty"`
	}
}

func (h *OffersHandler) HandleOffers(ctx context.Context, input *OffersRequest) (*OffersResponse, error) {
	params := h.normalizer.FromQuery(search.Query{
		FromDate: input.FromDate,
		ToDate:   input.ToDate,
		Adult:    input.Adult,
		Children: []string{input.Child1, input.Child2, input.Child3, input.Child4, input.Child5, input.Child6},
	})
	if params == nil {
		// Hard validation failure: prompt for new input, never call
		// the pricing API.
		return nil, huma.Error400BadRequest("Missing or invalid search parameters")
	}

	requestedCurrency := input.Currency
	if requestedCurrency == "" {
		requestedCurrency = h.cfg.DefaultCurrency
	}
	currency := h.normalizer.NormalizeCurrency(requestedCurrency)

	language := input.Language
	if language == "" {
		language = h.cfg.DefaultLanguage
	}

	// Definitions and prices are independent reads and may run
	// concurrently. A price failure is tolerated: the room listing
	// still renders, without prices, behind an inline warning.
	var (
		defs     *models.Definitions
		offers   []models.PriceOffer
		priceErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := h.catalog.Definitions(gctx, language)
		if err != nil {
			return err
		}
		defs = d
		return nil
	})
	g.Go(func() error {
		o, err := h.api.PriceOffers(gctx, *params, currency, language)
		if err != nil {
			priceErr = err
			return nil
		}
		offers = o
		return nil
	})
	if err := g.Wait(); err != nil {
		h.logger.ErrorContext(ctx, "failed to load room definitions", slog.Any("error", err))
		return nil, huma.Error502BadGateway("Failed to load room information")
	}

	res := &OffersResponse{}
	res.Body.SearchParams = *params
	res.Body.Currency = currency
	res.Body.Rooms = pricing.GroupByRoomType(offers, defs.RoomTypes)
	if priceErr != nil {
		h.logger.WarnContext(ctx, "price offers unavailable, rendering rooms without prices",
			slog.Any("error", priceErr))
		res.Body.PriceWarning = "Prices are temporarily unavailable. Rooms are shown without rates."
	}
	return res, nil
}
