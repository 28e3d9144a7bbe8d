// Package storage provides the durable key/value substrate the datastore
// persists into. Each driver maps string keys to string payloads; the
// datastore serializes whole collections as JSON under fixed keys.
package storage

// Storage is a string-keyed, string-valued persistence surface.
// Get reports whether the key exists; a missing key is not an error.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}
