package store

import "encoding/json"

// IStore is the interface for the shared key-value table. Values are kept as
// raw JSON so the store can hold any JSON-representable scalar or structure
// without caring about its shape.
//
// Thread-safety: implementations must make every method atomic with respect
// to all others. Two mutating operations may never interleave their effects,
// and a read may never observe a half-applied write.
type IStore interface {
	// Set inserts or updates the value for a key.
	Set(key string, value json.RawMessage) error
	// Get returns the value for a key. The boolean return value indicates
	// whether the key was present.
	Get(key string) (value json.RawMessage, loaded bool, err error)
	// Delete removes a key-value pair. The boolean return value indicates
	// whether the key was present before the call.
	Delete(key string) (deleted bool, err error)
	// Keys returns all keys currently in the store. Order is not significant.
	Keys() (keys []string, err error)
	// Clear removes every entry from the store.
	Clear() error
}
