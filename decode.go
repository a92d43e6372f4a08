package pgwire

// Decode dispatches packet to the decoder registered for its Tag and
// returns the resulting BackendMessage. An unrecognized tag yields
// *UnsupportedMessage without inspecting the body. Any parse failure is
// normalized to *PacketDecodingFailure or *ErrorResponseDecodingFailure.
//
// Decode uses DefaultOptions(); use a Decoder (see options.go) to opt into
// logging or metrics.
func Decode(packet Packet) (msg BackendMessage, err error) {
	return defaultDecoder.Decode(packet)
}

// Decode is the dispatch entry point for d's configuration. See the
// package-level Decode for behavior.
func (d *Decoder) Decode(packet Packet) (msg BackendMessage, err error) {
	defer func() { d.observe(packet.Tag, err) }()
	defer recoverDecode(&err)

	switch packet.Tag {
	case msgCommandCompleteC:
		return decodeCommandComplete(packet.Body)
	case msgParameterStatusS:
		return decodeParameterStatus(packet.Body)
	case msgBackendKeyDataK:
		return decodeBackendKeyData(packet.Body)
	case msgReadyForQueryZ:
		return decodeReadyForQuery(packet.Body)
	case msgRowDescriptionT:
		return decodeRowDescription(packet.Body)
	case msgDataRowD:
		return decodeDataRow(packet.Body)
	case msgAuthenticationR:
		return decodeAuthenticationMessage(packet.Body)
	case msgNoticeResponseN:
		return d.decodeNoticeResponse(packet.Body)
	case msgErrorResponseE:
		return d.decodeErrorResponse(packet.Body)
	default:
		return nil, &UnsupportedMessage{Tag: packet.Tag}
	}
}

// DecodeCommandComplete decodes a CommandComplete body (tag 'C'): a single
// null-terminated command tag such as "INSERT 0 1".
func DecodeCommandComplete(body []byte) (msg CommandComplete, err error) {
	defer recoverDecode(&err)
	return decodeCommandComplete(body)
}

func decodeCommandComplete(body []byte) (CommandComplete, error) {
	r := NewReader(body)
	return CommandComplete{Tag: r.CString()}, nil
}

// DecodeParameterStatus decodes a ParameterStatus body (tag 'S'): two
// null-terminated strings, name then value.
func DecodeParameterStatus(body []byte) (msg ParameterStatus, err error) {
	defer recoverDecode(&err)
	return decodeParameterStatus(body)
}

func decodeParameterStatus(body []byte) (ParameterStatus, error) {
	r := NewReader(body)
	name := r.CString()
	value := r.CString()
	return ParameterStatus{Name: name, Value: value}, nil
}

// DecodeBackendKeyData decodes a BackendKeyData body (tag 'K'): two
// big-endian int32s, process ID then secret key.
func DecodeBackendKeyData(body []byte) (msg BackendKeyData, err error) {
	defer recoverDecode(&err)
	return decodeBackendKeyData(body)
}

func decodeBackendKeyData(body []byte) (BackendKeyData, error) {
	r := NewReader(body)
	pid := r.Int32()
	secret := r.Int32()
	return BackendKeyData{ProcessID: pid, SecretKey: secret}, nil
}

// DecodeReadyForQuery decodes a ReadyForQuery body (tag 'Z'): a single
// transaction-status byte.
func DecodeReadyForQuery(body []byte) (msg ReadyForQuery, err error) {
	defer recoverDecode(&err)
	return decodeReadyForQuery(body)
}

func decodeReadyForQuery(body []byte) (ReadyForQuery, error) {
	r := NewReader(body)
	status := decodeTxStatus(r.Byte())
	return ReadyForQuery{TxStatus: status}, nil
}

// DecodeRowDescription decodes a RowDescription body (tag 'T'): an unsigned
// 16-bit field count followed by that many field descriptors, in wire order.
func DecodeRowDescription(body []byte) (msg RowDescription, err error) {
	defer recoverDecode(&err)
	return decodeRowDescription(body)
}

func decodeRowDescription(body []byte) (RowDescription, error) {
	r := NewReader(body)
	n := r.Uint16()
	fields := make([]RowDescriptionField, n)
	for i := range fields {
		fields[i] = RowDescriptionField{
			Name:         r.CString(),
			TableOID:     r.Int32(),
			TableAttrID:  r.Int16(),
			DataTypeOID:  r.Int32(),
			DataTypeSize: r.Int16(),
			TypeModifier: r.Int32(),
			FormatCode:   decodeFormatCode(r.Int16()),
		}
	}
	return RowDescription{Fields: fields}, nil
}

// DecodeDataRow decodes a DataRow body (tag 'D'): an unsigned 16-bit column
// count followed by that many length-prefixed column values, in wire order. A
// length of -1 decodes to a nil column (SQL NULL); 0 decodes to a non-nil
// empty slice; any length < -1 is a PacketDecodingFailure.
func DecodeDataRow(body []byte) (msg DataRow, err error) {
	defer recoverDecode(&err)
	return decodeDataRow(body)
}

func decodeDataRow(body []byte) (DataRow, error) {
	r := NewReader(body)
	n := r.Uint16()
	cols := make([][]byte, n)
	for i := range cols {
		l := r.Int32()
		switch {
		case l == -1:
			cols[i] = nil
		case l == 0:
			cols[i] = []byte{}
		case l > 0:
			cols[i] = r.Take(int(l))
		default:
			errorf("invalid column length %d", l)
		}
	}
	return DataRow{Columns: cols}, nil
}

// DecodeAuthenticationMessage decodes an Authentication body (tag 'R'):
// an int32 code followed by a code-specific payload.
func DecodeAuthenticationMessage(body []byte) (msg AuthenticationMessage, err error) {
	defer recoverDecode(&err)
	return decodeAuthenticationMessage(body)
}

func decodeAuthenticationMessage(body []byte) (AuthenticationMessage, error) {
	r := NewReader(body)
	return AuthenticationMessage{Variant: decodeAuthVariant(r)}, nil
}
