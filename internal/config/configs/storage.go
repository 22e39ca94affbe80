package configs

// Storage selects the campaign store backend. The postgres driver is
// the deployment default; sqlite keeps local development free of any
// external service, matching how the system was originally run.
type Storage struct {
	// Driver is either "postgres" or "sqlite".
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"advision.db"`
	// Seed inserts synthetic campaigns on startup when the store is
	// empty. Intended for demos and local development.
	Seed bool `env:"SEED" envDefault:"false"`
	// SeedCount is how many synthetic campaigns Seed inserts.
	SeedCount int `env:"SEED_COUNT" envDefault:"50"`
}
