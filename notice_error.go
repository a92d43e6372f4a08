package pgwire

// decodeNoticeResponse decodes a NoticeResponse body (tag 'N'): a field
// stream identical in shape to ErrorResponse's, classified the same way.
func (d *Decoder) decodeNoticeResponse(body []byte) (NoticeResponse, error) {
	msg, err := decodePostgresqlMessage(body)
	if err != nil {
		return NoticeResponse{}, err
	}
	if d.opts.metrics != nil {
		d.opts.metrics.observeClassification(msg.Kind)
	}
	return NoticeResponse{Message: msg}, nil
}

// decodeErrorResponse decodes an ErrorResponse body (tag 'E'): a field
// stream identical in shape to NoticeResponse's, classified the same way.
func (d *Decoder) decodeErrorResponse(body []byte) (ErrorResponse, error) {
	msg, err := decodePostgresqlMessage(body)
	if err != nil {
		return ErrorResponse{}, err
	}
	if d.opts.metrics != nil {
		d.opts.metrics.observeClassification(msg.Kind)
	}
	return ErrorResponse{Message: msg}, nil
}

// decodePostgresqlMessage reads the field stream shared by ErrorResponse
// and NoticeResponse, validates the required fields, and classifies the
// result. A missing required field aborts with *ErrorResponseDecodingFailure
// rather than *PacketDecodingFailure, since the packet framing itself was
// fine — only the field stream's content was incomplete.
func decodePostgresqlMessage(body []byte) (PostgresqlMessage, error) {
	r := NewReader(body)
	fields := readFieldStream(r)
	params, err := buildErrorParams(fields)
	if err != nil {
		return PostgresqlMessage{}, err
	}
	return PostgresqlMessage{Kind: classify(params), Params: params}, nil
}
