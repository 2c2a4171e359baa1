package solana

import (
	"context"
	"fmt"
	"strings"

	"connectus/internal/domain/payment"

	"go.uber.org/zap"
)

// TransactionSource is the read side the verifier depends on; *Client
// satisfies it against a real RPC node, tests substitute a fake.
type TransactionSource interface {
	GetParsedTransaction(ctx context.Context, signature string) (*ParsedTransaction, error)
}

// TransferVerifier checks job-posting fee payments against the chain. It
// distinguishes "could not consult the chain" (payment.ErrUnreachable,
// retryable) from "the chain says this transfer does not qualify" (terminal).
type TransferVerifier struct {
	source TransactionSource
	logger *zap.Logger
}

func NewTransferVerifier(source TransactionSource, logger *zap.Logger) *TransferVerifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferVerifier{source: source, logger: logger}
}

func (v *TransferVerifier) VerifyTransfer(ctx context.Context, signature, expectedRecipient, expectedSender string) (payment.Transfer, error) {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return payment.Transfer{}, payment.ErrNotConfirmed
	}

	tx, err := v.source.GetParsedTransaction(ctx, signature)
	if err != nil {
		v.logger.Warn("transaction lookup failed",
			zap.String("signature", signature),
			zap.Error(err),
		)
		return payment.Transfer{}, fmt.Errorf("%w: %v", payment.ErrUnreachable, err)
	}
	if tx == nil {
		return payment.Transfer{}, payment.ErrNotConfirmed
	}
	if tx.Meta.Err != nil {
		return payment.Transfer{}, payment.ErrTransactionFailed
	}

	transfer, ok := findSystemTransfer(tx)
	if !ok || transfer.Parsed.Info.Destination != expectedRecipient {
		return payment.Transfer{}, payment.ErrRecipientMismatch
	}
	if transfer.Parsed.Info.Source != expectedSender {
		return payment.Transfer{}, payment.ErrSenderMismatch
	}

	return payment.Transfer{
		Signature: signature,
		AmountSOL: amountSOL(tx, transfer),
	}, nil
}

func findSystemTransfer(tx *ParsedTransaction) (ParsedInstruction, bool) {
	for _, inst := range tx.Transaction.Message.Instructions {
		if inst.ProgramID == SystemProgramID {
			return inst, true
		}
	}
	return ParsedInstruction{}, false
}

// amountSOL derives the transferred amount from the instruction lamports,
// falling back to the fee payer's pre/post balance delta when the parsed
// instruction carries none.
func amountSOL(tx *ParsedTransaction, transfer ParsedInstruction) float64 {
	if lamports := transfer.Parsed.Info.Lamports; lamports > 0 {
		return float64(lamports) / LamportsPerSOL
	}

	pre := tx.Meta.PreBalances
	post := tx.Meta.PostBalances
	if len(pre) > 0 && len(post) > 0 {
		if diff := pre[0] - post[0]; diff > 0 {
			return float64(diff) / LamportsPerSOL
		}
	}
	return 0
}
