package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable of a run. There are no CLI flags: a single
// parameterless invocation performs one full pass, and anything that needs
// adjusting comes from the environment.
type Config struct {
	// App Settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`
	Workers  int    `envconfig:"MAX_WORKERS" default:"1"`

	// Catalog
	ServiceArea  string        `envconfig:"SERVICE_AREA" default:"MEM"`
	EndpointsURL string        `envconfig:"ENDPOINTS_URL" default:"https://endpoints.office.com"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`

	// Probing
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	ProbeRate   float64       `envconfig:"PROBE_RATE" default:"10"`

	// Optional enrichment
	GeoIPPath string `envconfig:"GEOIP_PATH" default:"GeoLite2-Country.mmdb"`
}

// Load reads .env and processes environment variables
func Load() *Config {
	// Silently ignore if .env is missing (production might use real ENV vars)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Configuration Error: %v", err)
	}
	return &cfg
}
