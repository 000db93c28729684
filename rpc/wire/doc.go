// Package wire implements the frame codec for the service's stream protocol.
// Every message on the wire, request or response alike, is encoded as a
// 4-byte unsigned big-endian length followed by exactly that many bytes of
// UTF-8 JSON.
//
// The package focuses on:
//   - Reading exactly one frame from a byte stream, with a hard ceiling on
//     the declared payload length (MaxFrameLen, 10 MB)
//   - Writing one frame as a single header+payload sequence
//   - Classifying stream failures: a truncated stream surfaces as
//     io.EOF/io.ErrUnexpectedEOF, an oversized declared length as
//     ErrFrameTooLarge (rejected before any payload byte is consumed)
package wire
