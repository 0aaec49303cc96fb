// Package catalog serves the slow-moving hotel data (marketing params,
// room/board/rate definitions) from an in-memory TTL cache in front of
// the booking API. Price offers never pass through here; they are
// real-time data and always hit the upstream directly.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/perla-resort/booking-api/internal/models"
)

const (
	paramsTTL      = time.Hour
	definitionsTTL = 24 * time.Hour
)

// Source is the slice of the upstream client the catalog reads from.
type Source interface {
	HotelParams(ctx context.Context, language string) (*models.HotelParams, error)
	Definitions(ctx context.Context, language string) (*models.Definitions, error)
}

// Service caches hotel params for an hour and definitions for a day,
// keyed per language.
type Service struct {
	source Source
	cache  *cache.Cache
	logger *slog.Logger
}

func NewService(source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source: source,
		cache:  cache.New(paramsTTL, 10*time.Minute),
		logger: logger,
	}
}

// Hotel returns the hotel's marketing data with the raw vendor image
// list normalized for display.
func (s *Service) Hotel(ctx context.Context, language string) (*models.Hotel, error) {
	key := "params:" + language
	if cached, found := s.cache.Get(key); found {
		return cached.(*models.Hotel), nil
	}

	params, err := s.source.HotelParams(ctx, language)
	if err != nil {
		return nil, err
	}

	hotel := &models.Hotel{
		ID:          params.ID,
		Name:        params.Name,
		Description: params.Description,
		Address:     params.Address,
		Phone:       params.Phone,
		Email:       params.Email,
		Website:     params.Website,
		Images:      NormalizeImages(params.Images),
		Facilities:  params.Facilities,
		Location:    params.Location,
		Rating:      params.Rating,
		ReviewCount: params.ReviewCount,
	}

	s.cache.Set(key, hotel, paramsTTL)
	s.logger.InfoContext(ctx, "hotel params loaded",
		slog.String("language", language), slog.Int("images", len(hotel.Images)))
	return hotel, nil
}

// Definitions returns the room/board/rate catalogs.
func (s *Service) Definitions(ctx context.Context, language string) (*models.Definitions, error) {
	key := "definitions:" + language
	if cached, found := s.cache.Get(key); found {
		return cached.(*models.Definitions), nil
	}

	defs, err := s.source.Definitions(ctx, language)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, defs, definitionsTTL)
	s.logger.InfoContext(ctx, "hotel definitions loaded",
		slog.String("language", language),
		slog.Int("room_types", len(defs.RoomTypes)),
		slog.Int("board_types", len(defs.BoardTypes)),
		slog.Int("rate_types", len(defs.RateTypes)))
	return defs, nil
}

// NormalizeImages converts the vendor's loosely shaped image list into
// the display shape. Field presence varies between hotels: the url may
// arrive as "url" or "image-url", and the main flag as "is-main" or
// order 1. The first image is main when nothing else claims to be.
func NormalizeImages(raw json.RawMessage) []models.HotelImage {
	if len(raw) == 0 {
		return []models.HotelImage{}
	}

	var entries []models.RawHotelImage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []models.HotelImage{}
	}

	images := make([]models.HotelImage, 0, len(entries))
	for i, entry := range entries {
		url := entry.URL
		if url == "" {
			url = entry.ImageURL
		}
		title := entry.Title
		if title == "" {
			title = entry.Description
		}
		if title == "" {
			title = fmt.Sprintf("Hotel Image %d", i+1)
		}
		id := entry.ID
		if id == 0 {
			id = i
		}
		images = append(images, models.HotelImage{
			ID:          id,
			URL:         url,
			Title:       title,
			Description: entry.Description,
			IsMain:      entry.IsMain || entry.Order == 1 || i == 0,
		})
	}
	return images
}
