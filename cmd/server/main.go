package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/perla-resort/booking-api/internal/catalog"
	"github.com/perla-resort/booking-api/internal/config"
	"github.com/perla-resort/booking-api/internal/elektra"
	"github.com/perla-resort/booking-api/internal/handlers"
	"github.com/perla-resort/booking-api/internal/notifier"
)

func main() {
	// Load .env for local development; real deployments set the
	// environment directly.
	godotenv.Load()

	// Load Configuration
	cfg := config.LoadConfig()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      parseLogLevel(cfg.LogLevel),
		TimeFormat: "2006-01-02 15:04:05",
	}))
	slog.SetDefault(logger)

	// Upstream client and cached catalog
	client := elektra.NewClient(cfg.BookingAPIURL, cfg.HotelID, cfg.BookingAPIToken, logger)
	hotelCatalog := catalog.NewService(client, logger)

	// Front-desk Discord notifications are optional
	var reservationNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" && cfg.DiscordNotificationsChannelID != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			reservationNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Handlers
	hotelHandler := handlers.NewHotelHandler(hotelCatalog, cfg)
	offersHandler := handlers.NewOffersHandler(client, hotelCatalog, cfg, logger)
	reservationHandler := handlers.NewReservationHandler(client, reservationNotifier, cfg, logger)
	statusHandler := handlers.NewStatusHandler(client, cfg)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, hotelHandler, offersHandler, reservationHandler, statusHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
