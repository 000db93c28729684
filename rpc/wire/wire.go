package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
)

const (
	// headerLen is the size of the length prefix
	headerLen = 4

	// MaxFrameLen is the ceiling on a declared payload length. Frames
	// declaring more are rejected before the payload is read.
	MaxFrameLen = 10_000_000
)

// ErrFrameTooLarge is returned when a frame header declares a payload longer
// than MaxFrameLen. The payload is not consumed; the stream position is right
// after the offending header.
var ErrFrameTooLarge = errors.New("frame length exceeds maximum")

// ReadFrame reads exactly one frame from r and returns its payload.
//
// A stream that ends before the header completes returns io.EOF (clean close
// between frames) or io.ErrUnexpectedEOF (truncated mid-header). A stream
// that ends inside the payload returns io.ErrUnexpectedEOF.
func ReadFrame(r io.Reader) ([]byte, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint32(header)
	if length > MaxFrameLen {
		return nil, fmt.Errorf("%w: declared %d bytes, maximum is %d", ErrFrameTooLarge, length, MaxFrameLen)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return payload, nil
}

// WriteFrame writes one frame containing payload to w.
func WriteFrame(w io.Writer, payload []byte) error {
	header := make([]byte, headerLen)
	binary.BigEndian.PutUint32(header, uint32(len(payload)))

	// net.Buffers issues header and payload as one writev where supported
	b := net.Buffers{header, payload}
	_, err := b.WriteTo(w)
	return err
}

// IsClosed reports whether err means the peer ended the stream or the stream
// was truncated mid-frame.
func IsClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed)
}

// IsTimeout reports whether err is a network timeout, i.e. a read deadline
// expired while waiting for a frame.
func IsTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
