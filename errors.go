package pgwire

import (
	"fmt"
	"strings"
)

// PacketDecodingFailure reports any byte-level parse problem encountered
// while decoding a packet body: truncation, invalid UTF-8, or an
// unexpected sentinel byte (an unrecognized TxStatus or FormatCode value).
type PacketDecodingFailure struct {
	Reason string
}

func (e *PacketDecodingFailure) Error() string {
	return "pgwire: packet decoding failure: " + e.Reason
}

// ErrorResponseDecodingFailure reports that one or more required fields
// (Severity, Code, Message) were missing from an ErrorResponse or
// NoticeResponse field stream. Messages is never empty, and is ordered
// Severity, Code, Message — the order validation checks them in, not the
// order they appeared on the wire.
type ErrorResponseDecodingFailure struct {
	Messages []string
}

func (e *ErrorResponseDecodingFailure) Error() string {
	return "pgwire: error response decoding failure: " + strings.Join(e.Messages, "; ")
}

// UnsupportedMessage reports that dispatch saw a packet tag for which no
// decoder is registered. It is not a parse failure: the packet's body was
// never even looked at.
type UnsupportedMessage struct {
	Tag byte
}

func (e *UnsupportedMessage) Error() string {
	return fmt.Sprintf("pgwire: unsupported message tag %q", e.Tag)
}

// decodePanic is the payload errorf panics with. It is never observed
// outside this package: recoverDecode converts it to a *PacketDecodingFailure
// at every exported Decode* entry point.
type decodePanic struct {
	msg string
}

// errorf aborts the current decode with a formatted reason. It must only
// be called from code running under a deferred recoverDecode — every
// Reader method and every per-message decoder in this package qualifies.
func errorf(format string, args ...any) {
	panic(decodePanic{msg: fmt.Sprintf(format, args...)})
}

// recoverDecode recovers a panic raised during decoding — whether raised by
// errorf or by an unexpected runtime fault such as an index out of range —
// and assigns the equivalent *PacketDecodingFailure through err. Decoders
// in this package never check lengths defensively before every read; this
// single deferred recover at each public entry point is what makes that
// safe, the same division of labor lib/pq's own errorf/errRecover pair
// draws around conn.go.
func recoverDecode(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case decodePanic:
		*err = &PacketDecodingFailure{Reason: v.msg}
	case error:
		*err = &PacketDecodingFailure{Reason: v.Error()}
	default:
		*err = &PacketDecodingFailure{Reason: fmt.Sprintf("%v", v)}
	}
}
