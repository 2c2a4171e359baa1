package payment

import (
	"context"
	"errors"
)

// Verification failures come in two kinds. Terminal ones mean the chain has
// seen the transaction and it does not qualify; retrying cannot help.
// ErrUnreachable means the verifier itself could not be consulted, which a
// client may retry.
var (
	ErrUnreachable       = errors.New("payment verifier unreachable")
	ErrNotConfirmed      = errors.New("transaction not found or not confirmed")
	ErrTransactionFailed = errors.New("transaction execution failed")
	ErrRecipientMismatch = errors.New("incorrect recipient for payment")
	ErrSenderMismatch    = errors.New("sender wallet does not match poster")
)

// Transfer is the verified outcome of a fee payment on chain.
type Transfer struct {
	Signature string
	AmountSOL float64
}

// Verifier checks that a transaction signature is a confirmed native transfer
// from expectedSender to expectedRecipient. Implementations must query the
// chain themselves and never trust client-asserted amounts or addresses.
type Verifier interface {
	VerifyTransfer(ctx context.Context, signature, expectedRecipient, expectedSender string) (Transfer, error)
}
