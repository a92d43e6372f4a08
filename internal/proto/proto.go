// From src/include/libpq/protocol.h and src/include/libpq/pqcomm.h – PostgreSQL 18.1

// Package proto carries the wire-level constants of the PostgreSQL
// frontend/backend protocol version 3.0. It knows byte values, not
// semantics: the decoder packages built on top of it decide what those
// bytes mean.
package proto

import (
	"fmt"
	"strconv"
)

// Constants from pqcomm.h
const (
	ProtocolVersion30 = (3 << 16) | 0 //lint:ignore SA4016 x
)

// Constants from fe-connect.c
const (
	// MaxErrlen bounds the accumulated size of a single ErrorResponse or
	// NoticeResponse field stream. A conforming server never sends
	// anything close to this; it exists so a field-stream reader can
	// refuse to accumulate an unbounded amount of memory for a malformed
	// or hostile peer.
	MaxErrlen = 30_000 // https://github.com/postgres/postgres/blob/c6a10a89f/src/interfaces/libpq/fe-connect.c#L4067
)

// ResponseCode is a response code sent by the backend: the one-byte tag
// at the head of every backend message.
type ResponseCode byte

// These are the response codes sent by the backend that this decoder
// knows how to parse a body for. The remaining codes of the protocol
// (ParseComplete, BindComplete, CopyInResponse, ...) are not defined here;
// dispatch treats them like any other unknown tag, and decoding one of
// them yields UnsupportedMessage.
const (
	CommandComplete       = ResponseCode('C')
	DataRow               = ResponseCode('D')
	ErrorResponse         = ResponseCode('E')
	BackendKeyData        = ResponseCode('K')
	NoticeResponse        = ResponseCode('N')
	AuthenticationRequest = ResponseCode('R')
	ParameterStatus       = ResponseCode('S')
	RowDescription        = ResponseCode('T')
	ReadyForQuery         = ResponseCode('Z')
)

func (r ResponseCode) String() string {
	s, ok := map[ResponseCode]string{
		CommandComplete:       "CommandComplete",
		DataRow:               "DataRow",
		ErrorResponse:         "ErrorResponse",
		BackendKeyData:        "BackendKeyData",
		NoticeResponse:        "NoticeResponse",
		AuthenticationRequest: "AuthRequest",
		ParameterStatus:       "ParamStatus",
		RowDescription:        "RowDescription",
		ReadyForQuery:         "ReadyForQuery",
	}[r]
	if !ok {
		s = "<unknown>"
	}
	c := string(r)
	if r <= 0x1f || r == 0x7f {
		c = fmt.Sprintf("0x%x", string(r))
	}
	return "(" + c + ") " + s
}

// AuthCode is an authentication request code sent by the backend as the
// first int32 of an AuthenticationRequest body.
type AuthCode int32

// These are the authentication request codes sent by the backend.
const (
	AuthReqOk       = AuthCode(0) // User is authenticated
	AuthReqKrb5     = AuthCode(2) // Kerberos V5. Not supported any more by real servers, but still decodable.
	AuthReqPassword = AuthCode(3) // Cleartext password
	AuthReqMD5      = AuthCode(5) // md5 password, 4-byte salt follows
	AuthReqSCM      = AuthCode(6) // SCM credential. Not supported any more.
	AuthReqGSS      = AuthCode(7) // GSSAPI without wrap()
	AuthReqGSSCont  = AuthCode(8) // Continue GSS exchanges; remaining body is opaque data
	AuthReqSSPI     = AuthCode(9) // SSPI negotiate without wrap()
)

func (a AuthCode) String() string {
	s, ok := map[AuthCode]string{
		AuthReqOk:       "ok",
		AuthReqKrb5:     "krb5",
		AuthReqPassword: "password",
		AuthReqMD5:      "md5",
		AuthReqSCM:      "scm",
		AuthReqGSS:      "gss",
		AuthReqGSSCont:  "gss-continue",
		AuthReqSSPI:     "sspi",
	}[a]
	if !ok {
		s = "unknown"
	}
	return s + " (" + strconv.Itoa(int(a)) + ")"
}
