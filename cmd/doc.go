// Package cmd implements the command-line interface for the loankv service.
// It provides a hierarchical command structure with operations for running
// the server and interacting with it as a client.
//
// The package is organized into several subpackages:
//
//   - serve: Commands for starting and configuring the server
//   - client: Client commands, both an interactive prompt and one-shot
//     requests (ping, loan, get, set, del, keys, clear)
//   - util: Shared utilities for command-line processing and configuration
//     (internal use)
//
// See loankv -help for a list of all commands.
package cmd
