// Package storage is the persistence port for the history and goals blobs.
// Each key is read and written as an atomic unit; there is no partial update.
package storage

// Store reads and writes named blobs. Get returns ok=false when the key has
// never been written. Implementations must leave prior state untouched when
// Set fails.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}
