package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"connectus/internal/domain/job"
	"connectus/internal/domain/payment"
	"connectus/internal/domain/user"
	"connectus/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWalletMissing        = errors.New("wallet address not set on profile")
	ErrDeadlineNotFuture    = errors.New("deadline must be in the future")
	ErrDuplicateTransaction = errors.New("transaction signature already used")
	ErrPaymentUnverified    = errors.New("payment verification failed")
	ErrPaymentUnreachable   = errors.New("payment verification unavailable")
)

type CreateJobInput struct {
	Title       string
	Description string
	Skills      []string
	Budget      string
	Salary      string
	Deadline    time.Time
	TxSignature string
}

// JobNotifier receives an event whenever a new job goes live.
type JobNotifier interface {
	JobPosted(j job.Job)
}

type JobUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateJobInput) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context) ([]job.Job, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]job.Job, error)
}

type Job struct {
	jobs        repository.JobRepository
	users       user.Repository
	payments    repository.PaymentRepository
	verifier    payment.Verifier
	adminWallet string
	notifier    JobNotifier
	logger      *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, users user.Repository, payments repository.PaymentRepository, verifier payment.Verifier, adminWallet string, notifier JobNotifier, logger *zap.Logger) *Job {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Job{
		jobs:        jobs,
		users:       users,
		payments:    payments,
		verifier:    verifier,
		adminWallet: adminWallet,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create publishes a job only after the platform fee transfer named by the
// transaction signature has been verified on chain. The signature is a
// one-shot token: a signature that already backed a job is rejected before
// any RPC call is made.
func (u *Job) Create(ctx context.Context, userID uuid.UUID, in CreateJobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	signature := strings.TrimSpace(in.TxSignature)
	skills := cleanSkillList(in.Skills)

	if title == "" || description == "" || len(skills) == 0 || signature == "" {
		return job.Job{}, ErrInvalidInput
	}
	if !in.Deadline.After(time.Now()) {
		return job.Job{}, ErrDeadlineNotFuture
	}

	poster, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return job.Job{}, ErrUserNotFound
		}
		return job.Job{}, ErrInternal
	}
	wallet := strings.TrimSpace(poster.PublicWalletAddress)
	if wallet == "" {
		return job.Job{}, ErrWalletMissing
	}

	used, err := u.payments.ExistsBySignature(ctx, signature)
	if err != nil {
		return job.Job{}, ErrInternal
	}
	if used {
		return job.Job{}, ErrDuplicateTransaction
	}

	transfer, err := u.verifier.VerifyTransfer(ctx, signature, u.adminWallet, wallet)
	if err != nil {
		if errors.Is(err, payment.ErrUnreachable) {
			return job.Job{}, ErrPaymentUnreachable
		}
		u.logger.Info("payment verification rejected",
			zap.String("signature", signature),
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return job.Job{}, ErrPaymentUnverified
	}

	j := job.Job{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Skills:      skills,
		Budget:      strings.TrimSpace(in.Budget),
		Salary:      strings.TrimSpace(in.Salary),
		Deadline:    in.Deadline,
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	// The job is already live at this point. Losing the payment record is a
	// bookkeeping gap, not a reason to fail the request, but it must be loud
	// enough to reconcile later.
	rec := payment.Payment{
		ID:          uuid.New(),
		UserID:      userID,
		JobTitle:    title,
		AmountSOL:   transfer.AmountSOL,
		TxSignature: transfer.Signature,
	}
	if err := u.payments.Create(ctx, rec); err != nil {
		if errors.Is(err, payment.ErrDuplicateSignature) {
			u.logger.Error("payment record rejected as duplicate after job creation",
				zap.String("signature", transfer.Signature),
				zap.String("job_id", j.ID.String()),
			)
		} else {
			u.logger.Error("failed to record platform fee payment",
				zap.String("signature", transfer.Signature),
				zap.String("job_id", j.ID.String()),
				zap.Error(err),
			)
		}
	}

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		created = j
	}

	if u.notifier != nil {
		u.notifier.JobPosted(created)
	}
	return created, nil
}

func (u *Job) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Job) List(ctx context.Context) ([]job.Job, error) {
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Job) ListMine(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	jobs, err := u.jobs.ListByOwner(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}
