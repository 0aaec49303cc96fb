package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/perla-resort/booking-api/internal/config"
	"github.com/perla-resort/booking-api/internal/models"
)

// Catalog is the cached hotel-data source the read handlers use.
type Catalog interface {
	Hotel(ctx context.Context, language string) (*models.Hotel, error)
	Definitions(ctx context.Context, language string) (*models.Definitions, error)
}

type HotelHandler struct {
	catalog Catalog
	cfg     *config.Config
}

func NewHotelHandler(catalog Catalog, cfg *config.Config) *HotelHandler {
	return &HotelHandler{catalog: catalog, cfg: cfg}
}

type HotelRequest struct {
	Language string `query:"language" doc:"Content language, e.g. TR or EN"`
}

type HotelResponse struct {
	Body models.Hotel
}

func (h *HotelHandler) HandleHotel(ctx context.Context, input *HotelRequest) (*HotelResponse, error) {
	language := input.Language
	if language == "" {
		language = h.cfg.DefaultLanguage
	}

	hotel, err := h.catalog.Hotel(ctx, language)
	if err != nil {
		return nil, huma.Error502BadGateway("Failed to load hotel information")
	}

	return &HotelResponse{Body: *hotel}, nil
}
