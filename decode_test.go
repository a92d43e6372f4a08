package pgwire

import (
	"bytes"
	"errors"
	"testing"
)

func cstr(s string) []byte { return append([]byte(s), 0) }

func TestDecodeCommandComplete(t *testing.T) {
	msg, err := Decode(Packet{Tag: msgCommandCompleteC, Body: cstr("INSERT 0 1")})
	if err != nil {
		t.Fatal(err)
	}
	cc, ok := msg.(CommandComplete)
	if !ok {
		t.Fatalf("got %T, want CommandComplete", msg)
	}
	if cc.Tag != "INSERT 0 1" {
		t.Fatalf("Tag = %q", cc.Tag)
	}
}

func TestDecodeParameterStatus(t *testing.T) {
	body := append(cstr("server_version"), cstr("16.2")...)
	msg, err := Decode(Packet{Tag: msgParameterStatusS, Body: body})
	if err != nil {
		t.Fatal(err)
	}
	ps := msg.(ParameterStatus)
	if ps.Name != "server_version" || ps.Value != "16.2" {
		t.Fatalf("got %+v", ps)
	}
}

func TestDecodeBackendKeyData(t *testing.T) {
	body := []byte{0, 0, 0x04, 0xd2, 0, 0, 0x16, 0x2e}
	msg, err := Decode(Packet{Tag: msgBackendKeyDataK, Body: body})
	if err != nil {
		t.Fatal(err)
	}
	bkd := msg.(BackendKeyData)
	if bkd.ProcessID != 1234 || bkd.SecretKey != 5678 {
		t.Fatalf("got %+v", bkd)
	}
}

func TestDecodeReadyForQuery(t *testing.T) {
	for b, want := range map[byte]TxStatus{'I': Idle, 'T': InTransaction, 'E': Failed} {
		msg, err := Decode(Packet{Tag: msgReadyForQueryZ, Body: []byte{b}})
		if err != nil {
			t.Fatal(err)
		}
		if msg.(ReadyForQuery).TxStatus != want {
			t.Fatalf("byte %q: got %v, want %v", b, msg.(ReadyForQuery).TxStatus, want)
		}
	}
}

func TestDecodeReadyForQueryInvalidStatus(t *testing.T) {
	_, err := Decode(Packet{Tag: msgReadyForQueryZ, Body: []byte{'X'}})
	if err == nil {
		t.Fatal("expected decode failure for unrecognized transaction status")
	}
}

func TestDecodeRowDescription(t *testing.T) {
	var body []byte
	body = append(body, 0, 1) // one field
	body = append(body, cstr("id")...)
	body = append(body, 0, 0, 0, 0)          // table oid
	body = append(body, 0, 0)                // table attr id
	body = append(body, 0, 0, 0, 23)         // int4 oid
	body = append(body, 0, 4)                // type size
	body = append(body, 0xff, 0xff, 0xff, 0xff) // type modifier -1
	body = append(body, 0, 0)                // format code text

	msg, err := Decode(Packet{Tag: msgRowDescriptionT, Body: body})
	if err != nil {
		t.Fatal(err)
	}
	rd := msg.(RowDescription)
	if len(rd.Fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(rd.Fields))
	}
	f := rd.Fields[0]
	if f.Name != "id" || f.DataTypeOID != 23 || f.FormatCode != Text {
		t.Fatalf("got %+v", f)
	}
}

func TestDecodeDataRowNullEmptyAndPresent(t *testing.T) {
	var body []byte
	body = append(body, 0, 3) // three columns
	body = append(body, 0xff, 0xff, 0xff, 0xff) // -1: NULL
	body = append(body, 0, 0, 0, 0)             // 0: empty, present
	body = append(body, 0, 0, 0, 2, 'h', 'i')   // 2 bytes: "hi"

	msg, err := Decode(Packet{Tag: msgDataRowD, Body: body})
	if err != nil {
		t.Fatal(err)
	}
	dr := msg.(DataRow)
	if dr.Columns[0] != nil {
		t.Fatalf("column 0 = %v, want nil", dr.Columns[0])
	}
	if dr.Columns[1] == nil || len(dr.Columns[1]) != 0 {
		t.Fatalf("column 1 = %v, want non-nil empty", dr.Columns[1])
	}
	if !bytes.Equal(dr.Columns[2], []byte("hi")) {
		t.Fatalf("column 2 = %v, want \"hi\"", dr.Columns[2])
	}
}

func TestDecodeDataRowInvalidLength(t *testing.T) {
	body := []byte{0, 1, 0xff, 0xff, 0xff, 0xfe} // length -2
	_, err := Decode(Packet{Tag: msgDataRowD, Body: body})
	if err == nil {
		t.Fatal("expected decode failure for column length < -1")
	}
}

func TestDecodeAuthenticationMessageMD5(t *testing.T) {
	body := []byte{0, 0, 0, 5, 0xde, 0xad, 0xbe, 0xef}
	msg, err := Decode(Packet{Tag: msgAuthenticationR, Body: body})
	if err != nil {
		t.Fatal(err)
	}
	auth := msg.(AuthenticationMessage)
	if auth.Variant.Kind != AuthMD5 {
		t.Fatalf("Kind = %v, want AuthMD5", auth.Variant.Kind)
	}
	if !bytes.Equal(auth.Variant.Salt, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("Salt = %v", auth.Variant.Salt)
	}
}

func TestDecodeAuthenticationMessageUnknownCode(t *testing.T) {
	body := []byte{0, 0, 0, 99}
	msg, err := Decode(Packet{Tag: msgAuthenticationR, Body: body})
	if err != nil {
		t.Fatal(err)
	}
	auth := msg.(AuthenticationMessage)
	if auth.Variant.Kind != AuthUnknown || auth.Variant.Code != 99 {
		t.Fatalf("got %+v", auth.Variant)
	}
}

func TestDecodeUnsupportedTag(t *testing.T) {
	_, err := Decode(Packet{Tag: '1', Body: nil})
	var unsupported *UnsupportedMessage
	if !errors.As(err, &unsupported) {
		t.Fatalf("got %T, want *UnsupportedMessage", err)
	}
}

func TestDecodeErrorResponse(t *testing.T) {
	var body []byte
	body = append(body, 'S')
	body = append(body, cstr("ERROR")...)
	body = append(body, 'C')
	body = append(body, cstr("42601")...)
	body = append(body, 'M')
	body = append(body, cstr("syntax error at or near \"SELEC\"")...)
	body = append(body, 0)

	msg, err := Decode(Packet{Tag: msgErrorResponseE, Body: body})
	if err != nil {
		t.Fatal(err)
	}
	er := msg.(ErrorResponse)
	if er.Message.Kind != SyntaxErrorOrAccessRuleViolation {
		t.Fatalf("Kind = %v", er.Message.Kind)
	}
	if er.Message.Params.Code != "42601" {
		t.Fatalf("Code = %v", er.Message.Params.Code)
	}
}

func TestDecodeErrorResponseMissingRequiredFields(t *testing.T) {
	var body []byte
	body = append(body, 'D')
	body = append(body, cstr("some detail")...)
	body = append(body, 0)

	_, err := Decode(Packet{Tag: msgErrorResponseE, Body: body})
	failure, ok := err.(*ErrorResponseDecodingFailure)
	if !ok {
		t.Fatalf("got %T, want *ErrorResponseDecodingFailure", err)
	}
	if len(failure.Messages) != 3 {
		t.Fatalf("got %d missing-field messages, want 3: %v", len(failure.Messages), failure.Messages)
	}
}

func TestDecodeErrorResponseUnknownSQLSTATEClass(t *testing.T) {
	var body []byte
	body = append(body, 'S')
	body = append(body, cstr("ERROR")...)
	body = append(body, 'C')
	body = append(body, cstr("99999")...)
	body = append(body, 'M')
	body = append(body, cstr("something vendor-specific")...)
	body = append(body, 0)

	msg, err := Decode(Packet{Tag: msgErrorResponseE, Body: body})
	if err != nil {
		t.Fatal(err)
	}
	if msg.(ErrorResponse).Message.Kind != UnknownError {
		t.Fatalf("Kind = %v, want UnknownError", msg.(ErrorResponse).Message.Kind)
	}
}
