package config

const (
	// DefaultDatabasePath is the default path for the SQLite database
	DefaultDatabasePath = "./wishlist.db"

	// DefaultBcryptCost is the bcrypt work factor used for user passwords
	DefaultBcryptCost = 12
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
