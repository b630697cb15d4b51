package configs

import "time"

// Mongo holds configuration for the document store holding campaigns.
// ConnectTimeout bounds the initial connect and ping retries.
type Mongo struct {
	URI            string        `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database       string        `env:"DATABASE" envDefault:"dexrooms"`
	Collection     string        `env:"COLLECTION" envDefault:"campaigns"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"30s"`
}
