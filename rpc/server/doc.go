// Package server implements the service side of the protocol: the listener
// lifecycle, the per-connection handler loop, and the command dispatcher.
//
// Key Components:
//
//   - Server: binds an address, accepts connections concurrently, and drives
//     one handler goroutine per connection. All handlers share the single
//     store and audit logger passed in at construction. Shutdown stops new
//     accepts and drains the running handlers.
//
//   - Connection handler: per connection, a sequential decode/dispatch/
//     respond/log loop bounded by the idle timeout. Decode failures are
//     reported to the peer without closing the connection; a timeout sends
//     one final error response and closes it.
//
//   - Dispatch: maps one decoded request to a store or amortization
//     operation. It never fails; every error condition becomes an
//     {ok:false, error:...} response.
//
// The package also exports Prometheus-style counters for requests, read
// errors and idle timeouts, served on an optional side listener.
package server
