package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	SessionTTLMin  int    `mapstructure:"SESSION_TTL_MIN"`

	// Stripe.
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`

	// SendGrid / booking confirmations.
	SendGridAPIKey    string `mapstructure:"SENDGRID_API_KEY"`
	BookingsEmail     string `mapstructure:"BOOKINGS_EMAIL"`
	BookingsEmailName string `mapstructure:"BOOKINGS_EMAIL_NAME"`

	// Postcode lookup and service area.
	PostcodesBaseURL   string  `mapstructure:"POSTCODES_BASE_URL"`
	ServiceOriginLat   float64 `mapstructure:"SERVICE_ORIGIN_LAT"`
	ServiceOriginLng   float64 `mapstructure:"SERVICE_ORIGIN_LNG"`
	ServiceRadiusMiles float64 `mapstructure:"SERVICE_RADIUS_MILES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL_MIN", 60)
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("BOOKINGS_EMAIL", "info@globaldrycleaners.co.uk")
	viper.SetDefault("BOOKINGS_EMAIL_NAME", "Global Dry Cleaners")
	viper.SetDefault("POSTCODES_BASE_URL", "https://api.postcodes.io")
	viper.SetDefault("SERVICE_ORIGIN_LAT", 51.6167)
	viper.SetDefault("SERVICE_ORIGIN_LNG", -0.3167)
	viper.SetDefault("SERVICE_RADIUS_MILES", 10.0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
