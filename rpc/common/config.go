package common

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Server configuration struct
// --------------------------------------------------------------------------

// ServerConfig holds all configuration parameters for the server.
type ServerConfig struct {
	// Bind address
	Host string
	Port int

	// Path of the JSON Lines audit log
	LogPath string

	// Idle timeout in seconds: how long a connection may sit without sending
	// a frame before the server responds with an error and closes it
	IdleTimeoutSecond int64

	// Optional address for the Prometheus metrics listener (empty = disabled)
	MetricsEndpoint string

	// Logging configuration
	LogLevel string
}

// Endpoint returns the host:port string the listener binds to
func (c *ServerConfig) Endpoint() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Server")
	addField("Endpoint", c.Endpoint())
	addField("Idle Timeout", fmt.Sprintf("%d sec", c.IdleTimeoutSecond))

	addSection("Audit Log")
	addField("Path", c.LogPath)

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	if c.MetricsEndpoint != "" {
		addSection("Metrics")
		addField("Endpoint", c.MetricsEndpoint)
	}

	return sb.String()
}

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for the client.
type ClientConfig struct {
	// Endpoint is the host:port of the server
	Endpoint string

	// TimeoutSecond bounds dialing and each request/response round trip
	TimeoutSecond int
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	return sb.String()
}
