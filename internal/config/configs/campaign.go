package configs

import "time"

// Campaign holds the values every new campaign is created with.
type Campaign struct {
	Goal         float64       `env:"GOAL" envDefault:"300"`
	Duration     time.Duration `env:"DURATION" envDefault:"48h"`
	EscrowWallet string        `env:"ESCROW_WALLET"`
	// AllowDuplicates permits several active campaigns for one token. When
	// false a second creation for the same token is rejected.
	AllowDuplicates bool `env:"ALLOW_DUPLICATES" envDefault:"true"`
}
