//
// Backend message tag constants.
//
// The message-tag and transaction-status constants in this file follow
// lib/pq's naming convention:
// "(msg)(NameInManual)(characterCode)". This results in long and awkward
// constant names, but makes it easy to tell what the author's intent is
// quickly in code, as well as when debugging against captured wire
// traffic (where one only sees the raw byte).
//
package pgwire

// Backend message tags (the single byte at the head of every packet this
// decoder parses a body for).
const (
	msgCommandCompleteC = 'C'
	msgParameterStatusS = 'S'
	msgBackendKeyDataK  = 'K'
	msgReadyForQueryZ   = 'Z'
	msgRowDescriptionT  = 'T'
	msgDataRowD         = 'D'
	msgAuthenticationR  = 'R'
	msgNoticeResponseN  = 'N'
	msgErrorResponseE   = 'E'
)

// ReadyForQuery transaction-status sub-codes.
const (
	msgTxIdleI          = 'I'
	msgTxInTransactionT = 'T'
	msgTxFailedE        = 'E'
)

// RowDescription per-field format codes.
const (
	fmtCodeText   = 0
	fmtCodeBinary = 1
)
