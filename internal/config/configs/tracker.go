package configs

import "time"

// Tracker configures the watch command. PollInterval controls how often
// the campaign is re-fetched and TickInterval how often the derived values
// are republished.
type Tracker struct {
	APIURL       string        `env:"API_URL" envDefault:"http://localhost:8080"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"60s"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
