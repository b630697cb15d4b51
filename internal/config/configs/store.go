package configs

// Store selects the campaign repository implementation.
type Store struct {
	// Driver is "mongo" (default) or "postgres".
	Driver string `env:"DRIVER" envDefault:"mongo"`
}

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)
