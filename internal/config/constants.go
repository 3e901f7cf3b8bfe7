package config

const (
	// DefaultDatabasePath is the default path for the SQLite key-value database
	DefaultDatabasePath = "./learnhub.db"

	// DefaultRedisKeyPrefix namespaces every key the Redis backend writes
	DefaultRedisKeyPrefix = "learnhub:"
)
