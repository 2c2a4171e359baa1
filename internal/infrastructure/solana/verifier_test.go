package solana

import (
	"context"
	"errors"
	"testing"

	"connectus/internal/domain/payment"
)

const (
	adminWallet  = "3m5Y3XZeZ4AGpqLzgTZJUgsMztHtr7ZCR3ZWgkqc9tXT"
	posterWallet = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
)

type fakeSource struct {
	tx  *ParsedTransaction
	err error
}

func (f fakeSource) GetParsedTransaction(context.Context, string) (*ParsedTransaction, error) {
	return f.tx, f.err
}

func confirmedTransfer(source, destination string, lamports int64) *ParsedTransaction {
	tx := &ParsedTransaction{}
	inst := ParsedInstruction{ProgramID: SystemProgramID}
	inst.Parsed.Type = "transfer"
	inst.Parsed.Info.Source = source
	inst.Parsed.Info.Destination = destination
	inst.Parsed.Info.Lamports = lamports
	tx.Transaction.Message.Instructions = []ParsedInstruction{inst}
	tx.Meta.PreBalances = []int64{100_000_000}
	tx.Meta.PostBalances = []int64{100_000_000 - lamports}
	return tx
}

func TestVerifyTransfer_Success(t *testing.T) {
	v := NewTransferVerifier(fakeSource{tx: confirmedTransfer(posterWallet, adminWallet, 10_000_000)}, nil)

	got, err := v.VerifyTransfer(context.Background(), "sig", adminWallet, posterWallet)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.AmountSOL != 0.01 {
		t.Fatalf("amount = %v, want 0.01", got.AmountSOL)
	}
}

func TestVerifyTransfer_BalanceDeltaFallback(t *testing.T) {
	tx := confirmedTransfer(posterWallet, adminWallet, 0)
	tx.Meta.PreBalances = []int64{50_000_000}
	tx.Meta.PostBalances = []int64{30_000_000}
	v := NewTransferVerifier(fakeSource{tx: tx}, nil)

	got, err := v.VerifyTransfer(context.Background(), "sig", adminWallet, posterWallet)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.AmountSOL != 0.02 {
		t.Fatalf("amount = %v, want 0.02", got.AmountSOL)
	}
}

func TestVerifyTransfer_Unconfirmed(t *testing.T) {
	v := NewTransferVerifier(fakeSource{tx: nil}, nil)
	_, err := v.VerifyTransfer(context.Background(), "sig", adminWallet, posterWallet)
	if !errors.Is(err, payment.ErrNotConfirmed) {
		t.Fatalf("err = %v, want ErrNotConfirmed", err)
	}
}

func TestVerifyTransfer_ExecutionError(t *testing.T) {
	tx := confirmedTransfer(posterWallet, adminWallet, 10_000_000)
	tx.Meta.Err = map[string]any{"InstructionError": []any{}}
	v := NewTransferVerifier(fakeSource{tx: tx}, nil)

	_, err := v.VerifyTransfer(context.Background(), "sig", adminWallet, posterWallet)
	if !errors.Is(err, payment.ErrTransactionFailed) {
		t.Fatalf("err = %v, want ErrTransactionFailed", err)
	}
}

func TestVerifyTransfer_WrongRecipient(t *testing.T) {
	v := NewTransferVerifier(fakeSource{tx: confirmedTransfer(posterWallet, posterWallet, 10_000_000)}, nil)
	_, err := v.VerifyTransfer(context.Background(), "sig", adminWallet, posterWallet)
	if !errors.Is(err, payment.ErrRecipientMismatch) {
		t.Fatalf("err = %v, want ErrRecipientMismatch", err)
	}
}

func TestVerifyTransfer_NoSystemInstruction(t *testing.T) {
	tx := confirmedTransfer(posterWallet, adminWallet, 10_000_000)
	tx.Transaction.Message.Instructions[0].ProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	v := NewTransferVerifier(fakeSource{tx: tx}, nil)

	_, err := v.VerifyTransfer(context.Background(), "sig", adminWallet, posterWallet)
	if !errors.Is(err, payment.ErrRecipientMismatch) {
		t.Fatalf("err = %v, want ErrRecipientMismatch", err)
	}
}

func TestVerifyTransfer_WrongSender(t *testing.T) {
	v := NewTransferVerifier(fakeSource{tx: confirmedTransfer(adminWallet, adminWallet, 10_000_000)}, nil)
	_, err := v.VerifyTransfer(context.Background(), "sig", adminWallet, posterWallet)
	if !errors.Is(err, payment.ErrSenderMismatch) {
		t.Fatalf("err = %v, want ErrSenderMismatch", err)
	}
}

func TestVerifyTransfer_RPCDown(t *testing.T) {
	v := NewTransferVerifier(fakeSource{err: errors.New("connection refused")}, nil)
	_, err := v.VerifyTransfer(context.Background(), "sig", adminWallet, posterWallet)
	if !errors.Is(err, payment.ErrUnreachable) {
		t.Fatalf("err = %v, want ErrUnreachable", err)
	}
}

func TestVerifyTransfer_EmptySignature(t *testing.T) {
	v := NewTransferVerifier(fakeSource{}, nil)
	_, err := v.VerifyTransfer(context.Background(), "   ", adminWallet, posterWallet)
	if !errors.Is(err, payment.ErrNotConfirmed) {
		t.Fatalf("err = %v, want ErrNotConfirmed", err)
	}
}
