// Package rpc provides the network layer of the service: the framed wire
// protocol and the server and client built on top of it.
//
// The package is organized into several subpackages:
//
//   - common: Protocol types and configuration shared by server and client,
//     including the Request/Response structures and logging setup.
//
//   - wire: The frame codec. Every message on the wire is a 4-byte big-endian
//     length followed by that many bytes of UTF-8 JSON.
//
//   - server: The listener lifecycle, the per-connection handler loop, and
//     the command dispatcher that executes requests against the shared store.
//
//   - client: A TCP client with typed helpers for every command, used by the
//     interactive prompt and the one-shot CLI commands.
package rpc
