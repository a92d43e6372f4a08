package pgwire

import "github.com/coldlake/pgwire/internal/proto"

// errorNoticeField is one (tag, value) pair of an ErrorResponse/NoticeResponse
// field stream.
type errorNoticeField struct {
	tag   byte
	value string
}

// readFieldStream reads an ErrorResponse/NoticeResponse body: repeated
// (tag byte, cstring value) pairs terminated by a zero tag byte. Fields are
// returned in wire order. The total accumulated value length is bounded by
// proto.MaxErrlen, the same defense libpq's own fe-connect.c applies
// against a malformed or hostile server sending an unbounded error message.
func readFieldStream(r *Reader) []errorNoticeField {
	var fields []errorNoticeField
	total := 0
	for {
		tag := r.Byte()
		if tag == 0 {
			return fields
		}
		value := r.CString()
		total += len(value)
		if total > proto.MaxErrlen {
			errorf("error/notice field stream exceeds %d bytes", proto.MaxErrlen)
		}
		fields = append(fields, errorNoticeField{tag: tag, value: value})
	}
}

// extractValueByCode returns the value of the first field in fields whose
// tag equals code, and true. If no field has that tag, it returns "", false.
// Duplicate tags on the wire resolve to their first occurrence.
func extractValueByCode(code byte, fields []errorNoticeField) (string, bool) {
	for _, f := range fields {
		if f.tag == code {
			return f.value, true
		}
	}
	return "", false
}
