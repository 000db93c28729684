// Package store defines the interface for the service's shared key-value
// table. Every connection handler operates on the same store instance, so the
// contract is deliberately strict: each operation is atomic with respect to
// all others, and no operation may observe the effects of a concurrently
// in-flight operation.
//
// Key Components:
//
//   - IStore Interface: the five whole-store operations the command dispatcher
//     delegates to (Set, Get, Delete, Keys, Clear). All implementations must
//     serialize these operations so that concurrent use from any number of
//     connections is linearizable.
//
// Implementations:
//
//   - In-memory store (memstore): a map guarded by a single exclusive lock,
//     holding values as raw JSON. The store's lifetime is the process
//     lifetime; it starts empty and nothing is persisted across restarts.
//     Available in the "github.com/pg84s/loankv/lib/store/memstore" package.
package store
