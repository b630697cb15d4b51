package configs

import "time"

// Moralis configures the token metadata provider. Requests are rate
// limited to RatePerSecond and successful lookups are cached for CacheTTL.
type Moralis struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://solana-gateway.moralis.io"`
	// Network is the Solana cluster segment of the metadata path.
	Network       string        `env:"NETWORK" envDefault:"mainnet"`
	APIKey        string        `env:"API_KEY"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"10s"`
	RatePerSecond int           `env:"RATE_PER_SECOND" envDefault:"5"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	// RetryWindow is the total time spent retrying transient failures.
	// Zero disables retries.
	RetryWindow time.Duration `env:"RETRY_WINDOW" envDefault:"5s"`
}
