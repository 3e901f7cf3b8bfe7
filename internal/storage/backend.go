// Package storage implements the persisted collection store: a key-value
// namespace where each key holds one JSON-encoded collection of records, plus
// the singleton session slot.
//
// # Backends
//
// Anything that can read and write a string under a key can hold the
// namespace:
//
//	store := storage.New(storage.NewMemoryBackend())
//	store := storage.New(db) // *database.Database, SQLite
//	store := storage.New(redisBackend)
//
// The store itself does no locking. Every write replaces the whole
// collection, so concurrent writers lose updates; callers are expected to be
// a single interactive client.
package storage

// Backend is the key-value capability the store is built on.
type Backend interface {
	// Read returns the value under key. ok is false when the key is absent.
	Read(key string) (value string, ok bool, err error)
	// Write replaces the value under key.
	Write(key, value string) error
}
