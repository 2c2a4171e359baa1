package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("payment not found")
	ErrDuplicateSignature = errors.New("transaction signature already recorded")
)

// Payment is the bookkeeping record for one verified job-posting fee. The
// transaction signature is the natural idempotency key: at most one record
// per signature, enforced by a unique constraint.
type Payment struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	JobTitle    string    `json:"job_title"`
	AmountSOL   float64   `json:"amount"`
	TxSignature string    `json:"tx_signature"`
	CreatedAt   time.Time `json:"created_at"`
}
