package outbound

import (
	"context"
)

// TxRunner executes fn inside a single storage transaction. Repository
// calls made with the ctx passed to fn join that transaction; any error
// rolls the whole unit back. Registration and user-record mutations use
// this so the primary write and its audit entry commit together.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
