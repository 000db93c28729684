package client

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/pg84s/loankv/rpc/common"
	"github.com/pg84s/loankv/rpc/wire"
)

// Client issues framed requests against a server. It is stateless between
// requests: every Do dials a fresh connection, so a Client may be used from
// concurrent goroutines.
type Client struct {
	config common.ClientConfig
}

// New creates a client for the configured endpoint.
func New(config common.ClientConfig) *Client {
	return &Client{config: config}
}

// Do sends one request and returns the decoded response. The configured
// timeout bounds dialing and the whole round trip.
func (c *Client) Do(req *common.Request) (*common.Response, error) {
	timeout := time.Duration(c.config.TimeoutSecond) * time.Second

	conn, err := net.DialTimeout("tcp", c.config.Endpoint, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.config.Endpoint, err)
	}
	defer conn.Close()

	if timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			return nil, fmt.Errorf("failed to set deadline: %w", err)
		}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	if err := wire.WriteFrame(conn, payload); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	respData, err := wire.ReadFrame(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	resp, err := common.DecodeResponse(respData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp, nil
}

// --------------------------------------------------------------------------
// Typed command helpers
// --------------------------------------------------------------------------

// Ping checks that the server is reachable and answering.
func (c *Client) Ping() (*common.Response, error) {
	return c.Do(&common.Request{Cmd: "PING"})
}

// Loan requests an amortization calculation.
func (c *Client) Loan(username string, amount float64, years int, rate float64) (*common.Response, error) {
	y := float64(years)
	return c.Do(&common.Request{
		Cmd:        "LOAN",
		Username:   username,
		LoanAmount: &amount,
		Years:      &y,
		AnnualRate: &rate,
	})
}

// Set stores a value under a key. The value must be valid JSON.
func (c *Client) Set(key string, value json.RawMessage) (*common.Response, error) {
	return c.Do(&common.Request{Cmd: "SET", Key: &key, Value: value})
}

// SetString stores a plain string value under a key.
func (c *Client) SetString(key, value string) (*common.Response, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return c.Set(key, data)
}

// Get reads the value for a key.
func (c *Client) Get(key string) (*common.Response, error) {
	return c.Do(&common.Request{Cmd: "GET", Key: &key})
}

// Del removes a key.
func (c *Client) Del(key string) (*common.Response, error) {
	return c.Do(&common.Request{Cmd: "DEL", Key: &key})
}

// Keys lists all keys.
func (c *Client) Keys() (*common.Response, error) {
	return c.Do(&common.Request{Cmd: "KEYS"})
}

// Clear removes every entry.
func (c *Client) Clear() (*common.Response, error) {
	return c.Do(&common.Request{Cmd: "CLEAR"})
}
