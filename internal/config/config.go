package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application. It is loaded once at
// startup and injected into constructors; nothing reads the environment after
// Load returns.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	SMTP      SMTPConfig
	Mail      MailConfig
	Payment   PaymentConfig
	Stripe    StripeConfig
	ANZ       ANZConfig
	Admin     AdminConfig
	Concierge ConciergeConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `default:"3001"`
}

// StoreConfig holds the booking record store configuration.
type StoreConfig struct {
	BookingsFile string `envconfig:"BOOKINGS_FILE" default:"bookings.json"`
}

// SMTPConfig holds the outbound mail relay configuration.
type SMTPConfig struct {
	Host     string `default:"smtp.us.opalstack.com"`
	Port     int    `default:"465"`
	User     string `envconfig:"EMAIL_USER"`
	Password string `envconfig:"EMAIL_PASS"`
}

// MailConfig holds the fixed notification addressing.
type MailConfig struct {
	FromName    string `split_words:"true" default:"Tonga VIP Website"`
	FromAddress string `split_words:"true" default:"info@tongaviptransfers.com"`
	To          string `default:"info@tongaviptransfers.com"`
}

// PaymentConfig selects the active payment processor.
type PaymentConfig struct {
	Provider string `default:"stripe"`
	Currency string `default:"usd"`
}

// StripeConfig holds Stripe API credentials.
type StripeConfig struct {
	SecretKey string `split_words:"true"`
}

// ANZConfig holds the ANZ hosted-checkout gateway credentials.
type ANZConfig struct {
	MerchantID  string `split_words:"true"`
	APIPassword string `envconfig:"ANZ_API_PASSWORD"`
	BaseURL     string `split_words:"true" default:"https://anzegate.gateway.mastercard.com/api/rest/version/81"`
}

// AdminConfig holds the admin login credential and token settings.
type AdminConfig struct {
	PasswordHash string        `split_words:"true"`
	JWTSecret    string        `envconfig:"JWT_SECRET"`
	TokenTTL     time.Duration `split_words:"true" default:"24h"`
}

// ConciergeConfig holds the AI concierge settings.
type ConciergeConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY"`
	Model  string `default:"gemini-2.5-flash"`
}

// CORSConfig lists allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string `split_words:"true" default:"http://localhost:3000,http://localhost:5173"`
}

// Load reads .env when present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
