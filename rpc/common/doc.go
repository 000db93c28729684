// Package common provides core data structures and utilities shared across
// the service. It defines the wire protocol types, configuration structures,
// and logging setup used by other packages.
//
// The package focuses on:
//   - The JSON request/response protocol spoken inside each frame
//   - Configuration structures for the server and client components
//   - Process-wide diagnostic logger initialization
//
// Key Components:
//
//   - Request: Decoded form of one client frame. A single structure covers
//     the whole command set (PING, LOAN, SET, GET, DEL, KEYS, CLEAR); which
//     fields are meaningful depends on the command.
//
//   - Response: Reply to one request, with factory methods for every success
//     and failure shape the dispatcher produces.
//
//   - ServerConfig: Bind address, audit log path, idle timeout, metrics
//     endpoint and log level for the server process.
//
//   - ClientConfig: Endpoint and timeout configuration for client commands.
package common
