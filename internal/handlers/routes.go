package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/perla-resort/booking-api/internal/config"
	"github.com/perla-resort/booking-api/internal/requestid"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, hotelHandler *HotelHandler, offersHandler *OffersHandler, reservationHandler *ReservationHandler, statusHandler *StatusHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", requestid.Header},
		}))
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Perla Resort Booking API", "1.0.0")
	api := humachi.New(r, humaConfig)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	huma.Get(api, "/api/hotel", hotelHandler.HandleHotel)
	huma.Get(api, "/api/offers", offersHandler.HandleOffers)
	huma.Get(api, "/api/status", statusHandler.HandleStatus)

	huma.Post(api, "/api/create-reservation", reservationHandler.HandleCreateReservation)
	huma.Post(api, "/api/update-reservation", reservationHandler.HandleUpdateReservation)
}
