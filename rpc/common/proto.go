package common

import (
	"encoding/json"
)

// --------------------------------------------------------------------------
// Request Structure
// --------------------------------------------------------------------------

// Request is the decoded form of one client frame. A single struct covers the
// whole command set; which fields are meaningful depends on Cmd. Fields a
// command does not use are ignored. Pointer fields distinguish "absent" from
// a zero value, which the dispatcher needs for validation.
type Request struct {
	// Cmd selects the command. Matching is case-insensitive.
	Cmd string `json:"cmd"`

	// Key-value fields
	Key   *string         `json:"key,omitempty"`   // Used for: SET, GET, DEL
	Value json.RawMessage `json:"value,omitempty"` // Used for: SET (any JSON value)

	// Loan fields
	Username   string   `json:"username,omitempty"`
	LoanAmount *float64 `json:"loan_amount,omitempty"`
	Years      *float64 `json:"years,omitempty"`
	AnnualRate *float64 `json:"annual_rate,omitempty"`
}

// DecodeRequest parses one frame payload into a Request.
func DecodeRequest(payload []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// --------------------------------------------------------------------------
// Response Structure
// --------------------------------------------------------------------------

// Response is the reply to one Request. Ok is always present; on failure
// Error carries the message, on success the command-specific fields are set.
type Response struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	Reply   string          `json:"reply,omitempty"`   // PING
	Value   json.RawMessage `json:"value,omitempty"`   // GET
	Keys    *[]string       `json:"keys,omitempty"`    // KEYS
	Deleted *bool           `json:"deleted,omitempty"` // DEL

	MonthlyPayment *float64 `json:"monthly_payment,omitempty"` // LOAN
	TotalPayment   *float64 `json:"total_payment,omitempty"`   // LOAN
}

// Encode serializes the response to compact JSON. Responses are built
// internally from well-formed values, so encoding cannot fail; a marshal
// error would be a programming bug and panics.
func (r *Response) Encode() []byte {
	data, err := json.Marshal(r)
	if err != nil {
		panic(err)
	}
	return data
}

// DecodeResponse parses one frame payload into a Response (client side).
func DecodeResponse(payload []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --------------------------------------------------------------------------
// Response Factory Functions
// --------------------------------------------------------------------------

// NewErrorResponse creates a failure response with the given message
func NewErrorResponse(msg string) *Response {
	return &Response{Ok: false, Error: msg}
}

// NewPongResponse creates the PING success response
func NewPongResponse() *Response {
	return &Response{Ok: true, Reply: "PONG"}
}

// NewSetResponse creates the SET success response
func NewSetResponse() *Response {
	return &Response{Ok: true}
}

// NewGetResponse creates the GET success response carrying the stored value
func NewGetResponse(value json.RawMessage) *Response {
	return &Response{Ok: true, Value: value}
}

// NewDeleteResponse creates the DEL response; deleted reports whether the key
// was present
func NewDeleteResponse(deleted bool) *Response {
	return &Response{Ok: true, Deleted: &deleted}
}

// NewKeysResponse creates the KEYS response. A nil slice is reported as an
// empty list, never omitted.
func NewKeysResponse(keys []string) *Response {
	if keys == nil {
		keys = []string{}
	}
	return &Response{Ok: true, Keys: &keys}
}

// NewClearResponse creates the CLEAR success response
func NewClearResponse() *Response {
	return &Response{Ok: true}
}

// NewLoanResponse creates the LOAN success response
func NewLoanResponse(monthly, total float64) *Response {
	return &Response{Ok: true, MonthlyPayment: &monthly, TotalPayment: &total}
}
