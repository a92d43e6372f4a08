/*
Package pgwire decodes PostgreSQL frontend/backend protocol version 3.0
backend messages from their wire bytes into typed Go values.

It is a decoder, not a driver: it has no socket, performs no
authentication, builds no queries, and materializes no application-level
result types. Something else — a connection, a proxy, a packet capture —
hands it framed bytes; pgwire hands back a BackendMessage.

# Reading packets

ReadPacket bridges a bufio.Reader over whatever transport produced the
bytes into the Packet value the rest of this package consumes:

	p, err := pgwire.ReadPacket(r)
	if err != nil {
		// transport error, not a decode failure
	}
	msg, err := pgwire.Decode(p)

# Messages

Decode dispatches on Packet.Tag and returns one of the nine
BackendMessage variants this package knows: CommandComplete,
ParameterStatus, BackendKeyData, ReadyForQuery, RowDescription, DataRow,
AuthenticationMessage, NoticeResponse, and ErrorResponse. A tag this
package doesn't recognize yields *UnsupportedMessage rather than an
attempt to guess at the body.

Each message type other than NoticeResponse and ErrorResponse also has a
standalone DecodeXxx function (e.g. DecodeRowDescription) for callers who
already know which kind of body they're holding and don't need dispatch.
NoticeResponse and ErrorResponse bodies are decoded only through Decode.

# Errors and notices

ErrorResponse and NoticeResponse both carry a PostgresqlMessage: the
parsed ErrorParams plus a PostgresqlMessageKind classification derived
from the message's SQLSTATE class. Classification is total — an
unrecognized SQLSTATE class is not a decode failure, it classifies to
UnknownError.

	msg, err := pgwire.Decode(p)
	if err != nil {
		var failure *pgwire.ErrorResponseDecodingFailure
		if errors.As(err, &failure) {
			// malformed field stream; failure.Messages lists what's missing
		}
	}
	if e, ok := msg.(pgwire.ErrorResponse); ok {
		fmt.Println(e.Message.Kind, e.Message.Params.Code.Name())
	}

# Authentication

AuthenticationMessage reports which authentication challenge (if any) the
server presented — AuthKind plus whatever data the challenge itself
carries, such as an MD5 salt. It never performs the corresponding
cryptography; that is out of scope for a decoder.

# Observability

Decode uses DefaultOptions() and does nothing beyond decoding. To attach
structured logging or Prometheus counters, construct a Decoder:

	dec := pgwire.NewDecoder(
		pgwire.WithLogger(pgwire.ZapLogger(zapLogger)),
		pgwire.WithMetrics(pgwire.NewDecodeMetrics(prometheus.DefaultRegisterer)),
	)
	msg, err := dec.Decode(p)

Both are no-ops when not configured, so the zero-config path pays nothing
for observability it didn't ask for.
*/
package pgwire
