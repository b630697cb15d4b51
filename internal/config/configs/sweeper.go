package configs

// Sweeper configures the optional job that moves expired or funded
// campaigns out of the active status.
type Sweeper struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Schedule is a robfig/cron expression such as "@every 1m".
	Schedule string `env:"SCHEDULE" envDefault:"@every 1m"`
}
