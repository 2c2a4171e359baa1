package repository

import (
	"context"

	"connectus/internal/database"
	"connectus/internal/domain/payment"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	Create(ctx context.Context, p payment.Payment) error
	ExistsBySignature(ctx context.Context, signature string) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]payment.Payment, error)
}

type PostgresPaymentRepository struct {
	db database.DB
}

func NewPostgresPaymentRepository(db database.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

func (r *PostgresPaymentRepository) Create(ctx context.Context, p payment.Payment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payments (id, user_id, job_title, amount, tx_signature)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.UserID, p.JobTitle, p.AmountSOL, p.TxSignature,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return payment.ErrDuplicateSignature
		}
		return err
	}
	return nil
}

func (r *PostgresPaymentRepository) ExistsBySignature(ctx context.Context, signature string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payments WHERE tx_signature = $1)`, signature)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresPaymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]payment.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_title, amount, tx_signature, created_at
		 FROM payments WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]payment.Payment, 0)
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.JobTitle, &p.AmountSOL, &p.TxSignature, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
