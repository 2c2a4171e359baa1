package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"connectus/internal/domain/application"
	"connectus/internal/domain/job"
	"connectus/internal/domain/user"
	"connectus/internal/infrastructure/storage"

	"github.com/google/uuid"
)

func openJob(ownerID uuid.UUID) job.Job {
	return job.Job{
		ID:       uuid.New(),
		UserID:   ownerID,
		Title:    "Frontend Engineer",
		Skills:   []string{"react"},
		Deadline: time.Now().Add(7 * 24 * time.Hour),
	}
}

func TestApplySubmitsApplication(t *testing.T) {
	owner := uuid.New()
	applicant := user.User{ID: uuid.New(), Email: "dev@example.com"}
	j := openJob(owner)

	apps := &fakeApplicationRepo{}
	notifier := &fakeApplicationNotifier{}
	uc := NewApplicationUsecase(apps, newFakeJobRepo(j), newFakeUserRepo(applicant),
		&fakeResumeSaver{url: "/uploads/resumes/abc.pdf"}, notifier, nil)

	a, err := uc.Apply(context.Background(), applicant.ID, ApplyInput{
		JobID:        j.ID,
		ContactPhone: "555-0101",
		ResumeName:   "resume.pdf",
		Resume:       strings.NewReader("pdf bytes"),
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if a.Status != application.StatusSubmitted {
		t.Errorf("Status = %q, want %q", a.Status, application.StatusSubmitted)
	}
	if a.ContactEmail != "dev@example.com" {
		t.Errorf("ContactEmail = %q, want account email fallback", a.ContactEmail)
	}
	if a.ResumeURL != "/uploads/resumes/abc.pdf" {
		t.Errorf("ResumeURL = %q", a.ResumeURL)
	}
	if a.OwnerID != owner {
		t.Errorf("OwnerID = %v, want %v", a.OwnerID, owner)
	}

	if len(notifier.ownerIDs) != 1 || notifier.ownerIDs[0] != owner {
		t.Errorf("owner notification = %v, want one for %v", notifier.ownerIDs, owner)
	}
	if len(notifier.jobTitles) != 1 || notifier.jobTitles[0] != "Frontend Engineer" {
		t.Errorf("notified job title = %v", notifier.jobTitles)
	}
}

func TestApplyKeepsProvidedContactEmail(t *testing.T) {
	applicant := user.User{ID: uuid.New(), Email: "account@example.com"}
	j := openJob(uuid.New())

	uc := NewApplicationUsecase(&fakeApplicationRepo{}, newFakeJobRepo(j), newFakeUserRepo(applicant), &fakeResumeSaver{}, nil, nil)

	a, err := uc.Apply(context.Background(), applicant.ID, ApplyInput{
		JobID:        j.ID,
		ContactEmail: "other@example.com",
		ResumeName:   "resume.pdf",
		Resume:       strings.NewReader("pdf bytes"),
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if a.ContactEmail != "other@example.com" {
		t.Errorf("ContactEmail = %q, want provided address", a.ContactEmail)
	}
}

func TestApplyRejectsDuplicate(t *testing.T) {
	applicant := user.User{ID: uuid.New(), Email: "dev@example.com"}
	j := openJob(uuid.New())

	apps := &fakeApplicationRepo{}
	uc := NewApplicationUsecase(apps, newFakeJobRepo(j), newFakeUserRepo(applicant), &fakeResumeSaver{}, nil, nil)

	in := ApplyInput{JobID: j.ID, ResumeName: "resume.pdf", Resume: strings.NewReader("pdf bytes")}
	if _, err := uc.Apply(context.Background(), applicant.ID, in); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	in.Resume = strings.NewReader("pdf bytes")
	_, err := uc.Apply(context.Background(), applicant.ID, in)
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("second Apply() error = %v, want ErrAlreadyApplied", err)
	}
	if len(apps.apps) != 1 {
		t.Errorf("applications stored = %d, want 1", len(apps.apps))
	}
}

func TestApplyRejections(t *testing.T) {
	owner := uuid.New()
	applicant := user.User{ID: uuid.New(), Email: "dev@example.com"}

	closed := openJob(owner)
	closed.Deadline = time.Now().Add(-time.Hour)
	open := openJob(owner)

	tests := []struct {
		name        string
		applicantID uuid.UUID
		in          ApplyInput
		wantErr     error
	}{
		{"unknown job", applicant.ID, ApplyInput{JobID: uuid.New(), Resume: strings.NewReader("x")}, ErrJobNotFound},
		{"nil job id", applicant.ID, ApplyInput{Resume: strings.NewReader("x")}, ErrInvalidInput},
		{"deadline passed", applicant.ID, ApplyInput{JobID: closed.ID, Resume: strings.NewReader("x")}, ErrJobDeadlinePassed},
		{"own job", owner, ApplyInput{JobID: open.ID, Resume: strings.NewReader("x")}, ErrOwnJobApplication},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewApplicationUsecase(&fakeApplicationRepo{}, newFakeJobRepo(open, closed), newFakeUserRepo(applicant), &fakeResumeSaver{}, nil, nil)

			_, err := uc.Apply(context.Background(), tt.applicantID, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyRequiresResume(t *testing.T) {
	applicant := user.User{ID: uuid.New(), Email: "dev@example.com"}
	j := openJob(uuid.New())

	apps := &fakeApplicationRepo{}
	notifier := &fakeApplicationNotifier{}
	uc := NewApplicationUsecase(apps, newFakeJobRepo(j), newFakeUserRepo(applicant), &fakeResumeSaver{}, notifier, nil)

	_, err := uc.Apply(context.Background(), applicant.ID, ApplyInput{JobID: j.ID})
	if !errors.Is(err, ErrResumeRequired) {
		t.Fatalf("Apply() without resume error = %v, want ErrResumeRequired", err)
	}
	if len(apps.apps) != 0 {
		t.Errorf("applications stored = %d, want 0", len(apps.apps))
	}
	if len(notifier.ownerIDs) != 0 {
		t.Errorf("owner notifications = %d, want 0", len(notifier.ownerIDs))
	}
}

func TestApplyRejectsUnsupportedResume(t *testing.T) {
	applicant := user.User{ID: uuid.New(), Email: "dev@example.com"}
	j := openJob(uuid.New())

	saver := &fakeResumeSaver{err: storage.ErrUnsupportedFileType}
	uc := NewApplicationUsecase(&fakeApplicationRepo{}, newFakeJobRepo(j), newFakeUserRepo(applicant), saver, nil, nil)

	_, err := uc.Apply(context.Background(), applicant.ID, ApplyInput{
		JobID:      j.ID,
		ResumeName: "resume.exe",
		Resume:     strings.NewReader("nope"),
	})
	if !errors.Is(err, ErrUnsupportedResume) {
		t.Fatalf("Apply() error = %v, want ErrUnsupportedResume", err)
	}
}

func TestApplicationsForJobOwnerOnly(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	j := openJob(owner)

	apps := &fakeApplicationRepo{apps: []application.Application{
		{ID: uuid.New(), JobID: j.ID, ApplicantID: uuid.New(), OwnerID: owner},
	}}
	uc := NewApplicationUsecase(apps, newFakeJobRepo(j), newFakeUserRepo(), &fakeResumeSaver{}, nil, nil)

	got, err := uc.ApplicationsForJob(context.Background(), owner, j.ID)
	if err != nil {
		t.Fatalf("ApplicationsForJob() as owner error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("applications = %d, want 1", len(got))
	}

	if _, err := uc.ApplicationsForJob(context.Background(), stranger, j.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("ApplicationsForJob() as stranger error = %v, want ErrForbidden", err)
	}

	if _, err := uc.ApplicationsForJob(context.Background(), owner, uuid.New()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("ApplicationsForJob() unknown job error = %v, want ErrJobNotFound", err)
	}
}
