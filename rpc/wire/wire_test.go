package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/pg84s/loankv/rpc/common"
)

// TestFrameRoundTrip writes frames and reads them back
func TestFrameRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte(`{"cmd":"PING"}`),
		[]byte(`{"ok":true,"reply":"PONG"}`),
		[]byte(`{"cmd":"SET","key":"a","value":{"nested":[1,2,3]}}`),
		{}, // empty frame is legal
		[]byte(`{"cmd":"GET","key":"umlaut-äöü"}`),
	}

	var buf bytes.Buffer
	for _, p := range payloads {
		if err := WriteFrame(&buf, p); err != nil {
			t.Fatalf("WriteFrame(%q) failed: %v", p, err)
		}
	}

	for i, want := range payloads {
		got, err := ReadFrame(&buf)
		if err != nil {
			t.Fatalf("ReadFrame %d failed: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("frame %d: got %q, want %q", i, got, want)
		}
	}

	// stream is exhausted now
	if _, err := ReadFrame(&buf); err != io.EOF {
		t.Errorf("expected io.EOF on exhausted stream, got %v", err)
	}
}

// TestResponseRoundTrip checks that a response survives encode/decode through
// the codec unchanged.
func TestResponseRoundTrip(t *testing.T) {
	deleted := true
	keys := []string{"a", "b"}
	monthly, total := 193.33, 11599.68

	responses := []*common.Response{
		common.NewPongResponse(),
		common.NewErrorResponse("unknown cmd: FOO"),
		common.NewGetResponse([]byte(`"x"`)),
		{Ok: true, Deleted: &deleted},
		{Ok: true, Keys: &keys},
		{Ok: true, MonthlyPayment: &monthly, TotalPayment: &total},
	}

	for i, resp := range responses {
		var buf bytes.Buffer
		if err := WriteFrame(&buf, resp.Encode()); err != nil {
			t.Fatalf("WriteFrame %d failed: %v", i, err)
		}
		payload, err := ReadFrame(&buf)
		if err != nil {
			t.Fatalf("ReadFrame %d failed: %v", i, err)
		}
		got, err := common.DecodeResponse(payload)
		if err != nil {
			t.Fatalf("DecodeResponse %d failed: %v", i, err)
		}
		if !reflect.DeepEqual(got, resp) {
			t.Errorf("response %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v", i, resp, got)
		}
	}
}

// TestFrameTooLarge checks that an oversized declared length is rejected
// without consuming any payload bytes.
func TestFrameTooLarge(t *testing.T) {
	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, MaxFrameLen+1)
	body := []byte("this must not be consumed")

	r := bytes.NewReader(append(header, body...))
	_, err := ReadFrame(r)
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected ErrFrameTooLarge, got %v", err)
	}
	if r.Len() != len(body) {
		t.Errorf("payload bytes were consumed: %d remaining, want %d", r.Len(), len(body))
	}
}

// TestFrameAtCeiling checks the boundary: a frame of exactly MaxFrameLen
// bytes is accepted.
func TestFrameAtCeiling(t *testing.T) {
	payload := make([]byte, MaxFrameLen)
	var buf bytes.Buffer
	if err := WriteFrame(&buf, payload); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	got, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
	if len(got) != MaxFrameLen {
		t.Errorf("got %d bytes, want %d", len(got), MaxFrameLen)
	}
}

// TestTruncatedStreams checks the closed-stream classification for partial
// headers and partial payloads.
func TestTruncatedStreams(t *testing.T) {
	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, 10)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty stream", nil},
		{"partial header", header[:2]},
		{"header only", header},
		{"partial payload", append(append([]byte{}, header...), 'a', 'b')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFrame(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsClosed(err) {
				t.Errorf("IsClosed(%v) = false, want true", err)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	if IsTimeout(io.EOF) {
		t.Error("IsTimeout(io.EOF) = true, want false")
	}
	if IsTimeout(ErrFrameTooLarge) {
		t.Error("IsTimeout(ErrFrameTooLarge) = true, want false")
	}
}
