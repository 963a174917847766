package datadog

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// DefaultSite is the vendor's default region.
const DefaultSite = "datadoghq.com"

// Config carries the Datadog credentials and site, read once at startup and
// passed explicitly to the client. No other code reads the environment.
type Config struct {
	APIKey string
	AppKey string
	Site   string
}

// LoadConfig reads credentials from the environment. A .env file in the
// working directory is honored when present, matching the export-then-run
// usage of the deployment scripts. Missing credentials are the only fatal
// configuration error in the system.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIKey: os.Getenv("DD_API_KEY"),
		AppKey: os.Getenv("DD_APP_KEY"),
		Site:   os.Getenv("DD_SITE"),
	}
	if cfg.Site == "" {
		cfg.Site = DefaultSite
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("DD_API_KEY environment variable not set")
	}
	if cfg.AppKey == "" {
		return Config{}, errors.New("DD_APP_KEY environment variable not set")
	}
	return cfg, nil
}
