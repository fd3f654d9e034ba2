package repositories

import "context"

// TxFn is a function executed within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager runs a function atomically. The folder move path
// depends on this: its validate-then-write sequence must not interleave
// with a concurrent move that would pass validation against stale state.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
