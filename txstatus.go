package pgwire

// TxStatus is the server's view of the current transaction, reported on
// every ReadyForQuery message.
type TxStatus byte

const (
	Idle          TxStatus = msgTxIdleI
	InTransaction TxStatus = msgTxInTransactionT
	Failed        TxStatus = msgTxFailedE
)

func (t TxStatus) String() string {
	switch t {
	case Idle:
		return "idle"
	case InTransaction:
		return "in-transaction"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

func decodeTxStatus(b byte) TxStatus {
	switch b {
	case msgTxIdleI, msgTxInTransactionT, msgTxFailedE:
		return TxStatus(b)
	default:
		errorf("unknown transaction status %q", b)
		panic("unreached")
	}
}
