// Package jsonlog implements the service's append-only audit log in JSON
// Lines format: one compact JSON object per line, appended to a file opened
// in append mode.
//
// The package focuses on:
//   - Serializing writes from concurrent callers so no two records ever
//     interleave on disk
//   - Decoupling disk latency from the request/response cycle: Log only
//     queues the record, a single writer goroutine owns the file
//   - Treating write failures as a best-effort side channel that never aborts
//     command processing
//
// Records carry a UTC timestamp and the peer address, plus either the
// request/response pair of one exchange or a diagnostic event such as a
// timeout or read error.
package jsonlog
