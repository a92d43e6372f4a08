package pgwire

// BackendMessage is the tagged union of every backend message this
// decoder produces. Each concrete type below is a variant; isBackendMessage
// is unexported so the set of variants is closed to this package, the
// idiomatic Go rendering of what spec.md calls a "tagged union."
type BackendMessage interface {
	isBackendMessage()
}

// CommandComplete reports the completion of an SQL command, e.g.
// "INSERT 0 1" or "SELECT 3".
type CommandComplete struct {
	Tag string
}

// ParameterStatus reports the current value of a server run-time
// parameter, e.g. "server_version" / "16.2".
type ParameterStatus struct {
	Name  string
	Value string
}

// BackendKeyData carries the process ID and secret key a frontend uses to
// issue a CancelRequest against this connection.
type BackendKeyData struct {
	ProcessID int32
	SecretKey int32
}

// ReadyForQuery reports the server is idle and ready for a new query,
// along with the current transaction status.
type ReadyForQuery struct {
	TxStatus TxStatus
}

// RowDescription describes the shape of the rows a query result will
// produce. Fields preserves server transmission order.
type RowDescription struct {
	Fields []RowDescriptionField
}

// RowDescriptionField describes a single column of a RowDescription.
type RowDescriptionField struct {
	Name         string
	TableOID     int32
	TableAttrID  int16
	DataTypeOID  int32
	DataTypeSize int16
	TypeModifier int32
	FormatCode   FormatCode
}

// DataRow carries one row of query results. Columns preserves wire order;
// a nil entry denotes SQL NULL, a non-nil empty slice denotes an empty but
// present value.
type DataRow struct {
	Columns [][]byte
}

// AuthenticationMessage reports which authentication challenge (if any)
// the server is presenting. It classifies the challenge; it never performs
// the corresponding cryptography.
type AuthenticationMessage struct {
	Variant AuthVariant
}

// NoticeResponse carries a non-fatal diagnostic from the server.
type NoticeResponse struct {
	Message PostgresqlMessage
}

// ErrorResponse carries a fatal error from the server.
type ErrorResponse struct {
	Message PostgresqlMessage
}

func (CommandComplete) isBackendMessage()      {}
func (ParameterStatus) isBackendMessage()      {}
func (BackendKeyData) isBackendMessage()       {}
func (ReadyForQuery) isBackendMessage()        {}
func (RowDescription) isBackendMessage()       {}
func (DataRow) isBackendMessage()              {}
func (AuthenticationMessage) isBackendMessage() {}
func (NoticeResponse) isBackendMessage()       {}
func (ErrorResponse) isBackendMessage()        {}
