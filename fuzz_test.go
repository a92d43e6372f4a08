package pgwire

import (
	"bufio"
	"bytes"
	"testing"
)

// FuzzReadPacket exercises packet framing with arbitrary wire bytes; it
// must never panic, only return an error for malformed input.
func FuzzReadPacket(f *testing.F) {
	f.Add([]byte{'C', 0, 0, 0, 5, 0})
	f.Add([]byte{'E', 0, 0, 0, 4})
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = ReadPacket(bufio.NewReader(bytes.NewReader(data)))
	})
}

// FuzzDecode exercises full packet decoding for every recognized tag with
// arbitrary bodies. Decode's panic-recover boundary must convert every
// malformed input into an error, never let a panic escape.
func FuzzDecode(f *testing.F) {
	tags := []byte{
		msgCommandCompleteC, msgParameterStatusS, msgBackendKeyDataK,
		msgReadyForQueryZ, msgRowDescriptionT, msgDataRowD,
		msgAuthenticationR, msgNoticeResponseN, msgErrorResponseE,
	}
	f.Add(byte('C'), []byte("SELECT 1\x00"))
	f.Add(byte('E'), append(append([]byte{'S'}, cstr("ERROR")...), 0))
	f.Add(byte('R'), []byte{0, 0, 0, 5, 1, 2, 3, 4})
	f.Fuzz(func(t *testing.T, tag byte, body []byte) {
		valid := false
		for _, known := range tags {
			if tag == known {
				valid = true
			}
		}
		if !valid {
			return
		}
		_, _ = Decode(Packet{Tag: tag, Body: body})
	})
}

// FuzzReadFieldStream exercises the error/notice field-stream reader
// directly with arbitrary bytes; it must never panic outside a deferred
// recover.
func FuzzReadFieldStream(f *testing.F) {
	f.Add(append(append([]byte{'S'}, cstr("ERROR")...), 0))
	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() { recover() }()
		readFieldStream(NewReader(data))
	})
}
