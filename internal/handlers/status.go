package handlers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/perla-resort/booking-api/internal/config"
	"github.com/perla-resort/booking-api/internal/models"
)

// Upstream is the uncached client surface the status probe exercises.
// The probe deliberately bypasses the catalog cache so it reports the
// vendor's actual health, not the cache's.
type Upstream interface {
	HotelParams(ctx context.Context, language string) (*models.HotelParams, error)
	Definitions(ctx context.Context, language string) (*models.Definitions, error)
	PriceOffers(ctx context.Context, search models.SearchParams, currency, language string) ([]models.PriceOffer, error)
}

type StatusHandler struct {
	upstream Upstream
	cfg      *config.Config
	now      func() time.Time
}

func NewStatusHandler(upstream Upstream, cfg *config.Config) *StatusHandler {
	return &StatusHandler{upstream: upstream, cfg: cfg, now: time.Now}
}

type EndpointCheck struct {
	Endpoint  string `json:"endpoint"`
	OK        bool   `json:"ok"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

type StatusRequest struct{}

type StatusResponse struct {
	Body struct {
		Healthy bool            `json:"healthy"`
		Checks  []EndpointCheck `json:"checks"`
	}
}

// HandleStatus probes the three read endpoints of the booking API
// concurrently: hotel params, definitions and a smoke price query for
// a one-night stay starting tomorrow. No offer data is returned.
func (h *StatusHandler) HandleStatus(ctx context.Context, _ *StatusRequest) (*StatusResponse, error) {
	language := h.cfg.DefaultLanguage

	tomorrow := h.now().AddDate(0, 0, 1).Format("2006-01-02")
	dayAfter := h.now().AddDate(0, 0, 2).Format("2006-01-02")
	smokeSearch := models.SearchParams{FromDate: tomorrow, ToDate: dayAfter, Adults: 2}

	checks := make([]EndpointCheck, 3)
	g := new(errgroup.Group)
	g.Go(func() error {
		checks[0] = h.probe("params", func() error {
			_, err := h.upstream.HotelParams(ctx, language)
			return err
		})
		return nil
	})
	g.Go(func() error {
		checks[1] = h.probe("hotel-definitions", func() error {
			_, err := h.upstream.Definitions(ctx, language)
			return err
		})
		return nil
	})
	g.Go(func() error {
		checks[2] = h.probe("price", func() error {
			_, err := h.upstream.PriceOffers(ctx, smokeSearch, h.cfg.DefaultCurrency, language)
			return err
		})
		return nil
	})
	g.Wait()

	res := &StatusResponse{}
	res.Body.Checks = checks
	res.Body.Healthy = true
	for _, check := range checks {
		if !check.OK {
			res.Body.Healthy = false
		}
	}
	return res, nil
}

func (h *StatusHandler) probe(endpoint string, call func() error) EndpointCheck {
	start := h.now()
	err := call()
	check := EndpointCheck{
		Endpoint:  endpoint,
		OK:        err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		check.Error = err.Error()
	}
	return check
}
