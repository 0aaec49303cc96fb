package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	BookingAPIURL                 string `mapstructure:"BOOKING_API_URL"`
	BookingAPIToken               string `mapstructure:"BOOKING_API_TOKEN"`
	HotelID                       int    `mapstructure:"HOTEL_ID"`
	DefaultLanguage               string `mapstructure:"DEFAULT_LANGUAGE"`
	DefaultCurrency               string `mapstructure:"DEFAULT_CURRENCY"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	EnableCORS                    bool   `mapstructure:"ENABLE_CORS"`
	LogLevel                      string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("BOOKING_API_URL", "https://bookingapi.elektraweb.com")
	viper.SetDefault("HOTEL_ID", 23155)
	viper.SetDefault("DEFAULT_LANGUAGE", "TR")
	viper.SetDefault("DEFAULT_CURRENCY", "TRY")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.BindEnv("BOOKING_API_URL")
	viper.BindEnv("BOOKING_API_TOKEN")
	viper.BindEnv("HOTEL_ID")
	viper.BindEnv("DEFAULT_LANGUAGE")
	viper.BindEnv("DEFAULT_CURRENCY")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("ENABLE_CORS")
	viper.BindEnv("LOG_LEVEL")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	// The upstream token is the one credential everything depends on;
	// refuse to start instead of failing on the first request.
	if config.BookingAPIToken == "" {
		log.Fatalf("BOOKING_API_TOKEN is not set")
	}

	return &config
}
