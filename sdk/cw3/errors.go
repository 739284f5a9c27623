package cw3

import "fmt"

// TxFailedError is returned when a transaction was included in a block or rejected by the node
// with a non zero result code.
type TxFailedError struct {
	TxHash string
	Code   uint32
	RawLog string
}

// NewTxFailedError creates a new TxFailedError.
func NewTxFailedError(txHash string, code uint32, rawLog string) *TxFailedError {
	return &TxFailedError{TxHash: txHash, Code: code, RawLog: rawLog}
}

func (e *TxFailedError) Error() string {
	return fmt.Sprintf("transaction %q failed with code %d: %s", e.TxHash, e.Code, e.RawLog)
}
