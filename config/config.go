// Package config loads runtime settings from the environment and the admin
// credentials file.
// File: config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"trading-cards-admin/logger"
	"trading-cards-admin/models"
)

// Store backends.
const (
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	Env           string `env:"APP_ENV" envDefault:"development"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"secret"`
	SecureCookies bool   `env:"SECURE_COOKIES" envDefault:"false"`
	TemplatesDir  string `env:"TEMPLATES_DIR" envDefault:"./templates"`
	StaticDir     string `env:"STATIC_DIR" envDefault:"./static"`
	LogDir        string `env:"LOG_DIR" envDefault:"./logs"`

	AdminCredsPath string `env:"ADMIN_CREDS_PATH" envDefault:"./config/admin_creds.json"`

	StoreBackend      string `env:"STORE_BACKEND" envDefault:"firestore"`
	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID"`

	// EventID scopes which event's data a reset wipes.
	EventID          string        `env:"EVENT_ID" envDefault:"current_event_id"`
	ResetFunctionURL string        `env:"RESET_FUNCTION_URL"`
	ResetTimeout     time.Duration `env:"RESET_TIMEOUT" envDefault:"2m"`

	PublicAppURL string `env:"PUBLIC_APP_URL" envDefault:"http://localhost:3000"`

	SentryDSN        string `env:"SENTRY_DSN"`
	MetricsEnabled   bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"TradingCardsAdmin"`
	XRayEnabled      bool   `env:"XRAY_ENABLED" envDefault:"false"`

	// AllowedOrigins lists extra origins that may open the live feed.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Load reads an optional .env file, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("Load: no .env file found, reading environment directly")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory:
	case BackendFirestore:
		if c.FirebaseProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required for the %s backend", BackendFirestore)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if strings.TrimSpace(c.EventID) == "" {
		return fmt.Errorf("EVENT_ID must not be empty")
	}
	return nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadAdminCreds loads the admin credentials file.
func LoadAdminCreds(path string) (*models.AdminCreds, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// "isadmin" is sometimes written as a string
	adminsData, _ := raw["admins"].([]interface{})
	for _, a := range adminsData {
		adminMap, ok := a.(map[string]interface{})
		if !ok {
			continue
		}
		if isAdminStr, ok := adminMap["isadmin"].(string); ok {
			adminMap["isadmin"] = isAdminStr == "True" || isAdminStr == "true"
		}
	}

	parsedData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode JSON: %w", err)
	}

	var creds models.AdminCreds
	if err := json.Unmarshal(parsedData, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse corrected JSON: %w", err)
	}

	for _, admin := range creds.Admins {
		logger.Debug.Printf("LoadAdminCreds: loaded admin %s (isAdmin=%t)", admin.Username, admin.IsAdmin)
	}
	return &creds, nil
}
