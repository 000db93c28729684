// Package client implements a client for the framed request/response
// protocol. One Client issues one request per connection: it dials the
// server, writes a single frame, awaits the reply frame, and closes — the
// same conversational shape the interactive prompt and the one-shot CLI
// commands need.
//
// Typed helpers (Ping, Loan, Set, Get, Del, Keys, Clear) cover the whole
// command set; Do sends an arbitrary request.
package client
