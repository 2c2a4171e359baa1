package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"connectus/internal/domain/application"
	"connectus/internal/domain/job"
	"connectus/internal/domain/user"
	"connectus/internal/infrastructure/storage"
	"connectus/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAlreadyApplied    = errors.New("already applied to this job")
	ErrJobDeadlinePassed = errors.New("job deadline has passed")
	ErrOwnJobApplication = errors.New("cannot apply to your own job")
	ErrResumeRequired    = errors.New("resume file is required")
	ErrUnsupportedResume = errors.New("unsupported resume file type")
)

type ApplyInput struct {
	JobID        uuid.UUID
	ContactEmail string
	ContactPhone string
	ResumeName   string
	Resume       io.Reader
}

// ResumeSaver persists an uploaded resume and returns its public URL path.
type ResumeSaver interface {
	Save(ctx context.Context, uploaderID uuid.UUID, originalName string, r io.Reader) (string, error)
}

// ApplicationNotifier tells a job owner that someone applied.
type ApplicationNotifier interface {
	ApplicationReceived(ownerID uuid.UUID, a application.Application, jobTitle string)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID uuid.UUID, in ApplyInput) (application.Application, error)
	MyApplications(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error)
	ApplicationsForJob(ctx context.Context, requesterID, jobID uuid.UUID) ([]application.Application, error)
	ApplicationsReceived(ctx context.Context, ownerID uuid.UUID) ([]application.Application, error)
}

type Application struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	users        user.Repository
	resumes      ResumeSaver
	notifier     ApplicationNotifier
	logger       *zap.Logger
}

func NewApplicationUsecase(applications repository.ApplicationRepository, jobs repository.JobRepository, users user.Repository, resumes ResumeSaver, notifier ApplicationNotifier, logger *zap.Logger) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Application{
		applications: applications,
		jobs:         jobs,
		users:        users,
		resumes:      resumes,
		notifier:     notifier,
		logger:       logger,
	}
}

// Apply submits an application. A resume is mandatory, one application per
// applicant per job; the contact email falls back to the applicant's account
// email when not given.
func (u *Application) Apply(ctx context.Context, applicantID uuid.UUID, in ApplyInput) (application.Application, error) {
	if in.JobID == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}
	if in.Resume == nil {
		return application.Application{}, ErrResumeRequired
	}

	j, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrInternal
	}
	if j.UserID == applicantID {
		return application.Application{}, ErrOwnJobApplication
	}
	if !j.Deadline.IsZero() && !j.Deadline.After(time.Now()) {
		return application.Application{}, ErrJobDeadlinePassed
	}

	exists, err := u.applications.ExistsByJobAndApplicant(ctx, in.JobID, applicantID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrAlreadyApplied
	}

	contactEmail := strings.TrimSpace(in.ContactEmail)
	if contactEmail == "" {
		applicant, err := u.users.GetByID(ctx, applicantID)
		if err != nil {
			return application.Application{}, ErrInternal
		}
		contactEmail = applicant.Email
	}

	resumeURL, err := u.resumes.Save(ctx, applicantID, in.ResumeName, in.Resume)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedFileType) {
			return application.Application{}, ErrUnsupportedResume
		}
		return application.Application{}, ErrInternal
	}

	a := application.Application{
		ID:           uuid.New(),
		JobID:        in.JobID,
		ApplicantID:  applicantID,
		OwnerID:      j.UserID,
		ContactEmail: contactEmail,
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		ResumeURL:    resumeURL,
		Status:       application.StatusSubmitted,
	}
	if err := u.applications.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.ApplicationReceived(j.UserID, a, j.Title)
	}
	return a, nil
}

func (u *Application) MyApplications(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	apps, err := u.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

// ApplicationsForJob lists applications for a single job; only the job owner
// may see them.
func (u *Application) ApplicationsForJob(ctx context.Context, requesterID, jobID uuid.UUID) ([]application.Application, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if j.UserID != requesterID {
		return nil, ErrForbidden
	}

	apps, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Application) ApplicationsReceived(ctx context.Context, ownerID uuid.UUID) ([]application.Application, error) {
	apps, err := u.applications.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}
