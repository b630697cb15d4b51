package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"dexrooms/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects between the Mongo and Psql sections below.
	Store configs.Store `envPrefix:"STORE_"`

	Mongo configs.Mongo `envPrefix:"MONGO_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	Moralis configs.Moralis `envPrefix:"MORALIS_"`

	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`

	Sweeper configs.Sweeper `envPrefix:"SWEEP_"`

	Tracker configs.Tracker `envPrefix:"TRACKER_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned. All fields are loaded
// with their specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case configs.StoreMongo, configs.StorePostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if !(c.Campaign.Goal > 0) {
		return fmt.Errorf("campaign goal must be positive, got %v", c.Campaign.Goal)
	}
	if c.Campaign.Duration <= 0 {
		return fmt.Errorf("campaign duration must be positive, got %s", c.Campaign.Duration)
	}
	if c.Moralis.RatePerSecond <= 0 {
		return fmt.Errorf("moralis rate must be positive, got %d", c.Moralis.RatePerSecond)
	}
	if c.Tracker.PollInterval <= 0 || c.Tracker.TickInterval <= 0 {
		return fmt.Errorf("tracker intervals must be positive")
	}
	return nil
}
