// Package memstore implements a local, in-memory, single-node key-value store based on the
// store.IStore interface. Values are held as raw JSON documents in a plain map and are
// not persisted between process restarts.
//
// Key Features:
//   - Pure in-memory storage without persistence
//   - Values stored verbatim as JSON documents of any shape
//   - Thread-safe operations for concurrent access
//
// Implementation Details:
//
//   - Locking Strategy: A single mutex guards the backing map. Keys() and Clear()
//     operate on the whole store at once, so they see and produce a consistent
//     snapshot with respect to concurrent Set and Delete calls.
//
//   - Value Semantics: Values are kept as json.RawMessage and returned as stored.
//     The store never re-encodes or inspects the documents it holds, so a stored
//     null, number, string, array or object round-trips byte-for-byte.
//
// Usage Example:
//
//	st := memstore.NewMemStore()
//
//	// Store an arbitrary JSON document
//	err := st.Set("session:123", json.RawMessage(`{"user":"ana"}`))
//
//	// Retrieve the value
//	value, exists, err := st.Get("session:123")
//
// Suitable Use Cases:
//
//	The memory store is ideal for:
//	- Ephemeral data that doesn't need to survive process restarts
//	- Single-node services where distributed consensus is not required
//	- Testing and development environments
package memstore
