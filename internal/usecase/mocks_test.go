package usecase

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"connectus/internal/domain/application"
	"connectus/internal/domain/job"
	"connectus/internal/domain/payment"
	"connectus/internal/domain/user"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	users     map[uuid.UUID]user.User
	getErr    error
	updateErr error
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]user.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if r.getErr != nil {
		return user.User{}, r.getErr
	}
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, fields user.UpdateProfileFields) (user.User, error) {
	if r.updateErr != nil {
		return user.User{}, r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if fields.Bio != nil {
		u.Bio = *fields.Bio
	}
	if fields.Skills != nil {
		u.Skills = fields.Skills
	}
	if fields.LinkedIn != nil {
		u.LinkedIn = *fields.LinkedIn
	}
	if fields.Phone != nil {
		u.Phone = *fields.Phone
	}
	if fields.PublicWalletAddress != nil {
		u.PublicWalletAddress = *fields.PublicWalletAddress
	}
	r.users[id] = u
	return u, nil
}

type fakeJobRepo struct {
	jobs      map[uuid.UUID]job.Job
	createErr error
	created   []job.Job
}

func newFakeJobRepo(jobs ...job.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[uuid.UUID]job.Job)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(_ context.Context, j job.Job) error {
	if r.createErr != nil {
		return r.createErr
	}
	j.CreatedAt = time.Now()
	r.jobs[j.ID] = j
	r.created = append(r.created, j)
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.jobs[id]
	return ok, nil
}

func (r *fakeJobRepo) List(_ context.Context) ([]job.Job, error) {
	out := make([]job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *fakeJobRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for _, j := range r.jobs {
		if j.UserID == ownerID {
			out = append(out, j)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	records   []payment.Payment
	used      map[string]bool
	createErr error
	existsErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{used: make(map[string]bool)}
}

func (r *fakePaymentRepo) Create(_ context.Context, p payment.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.used[p.TxSignature] {
		return payment.ErrDuplicateSignature
	}
	r.used[p.TxSignature] = true
	r.records = append(r.records, p)
	return nil
}

func (r *fakePaymentRepo) ExistsBySignature(_ context.Context, signature string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	return r.used[signature], nil
}

func (r *fakePaymentRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]payment.Payment, error) {
	out := make([]payment.Payment, 0)
	for _, p := range r.records {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	apps      []application.Application
	createErr error
}

func (r *fakeApplicationRepo) Create(_ context.Context, a application.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.apps {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return application.ErrDuplicate
		}
	}
	r.apps = append(r.apps, a)
	return nil
}

func (r *fakeApplicationRepo) ExistsByJobAndApplicant(_ context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	for _, a := range r.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range r.apps {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range r.apps {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeVerifier struct {
	transfer payment.Transfer
	err      error
	calls    int

	gotSignature string
	gotRecipient string
	gotSender    string
}

func (v *fakeVerifier) VerifyTransfer(_ context.Context, signature, expectedRecipient, expectedSender string) (payment.Transfer, error) {
	v.calls++
	v.gotSignature = signature
	v.gotRecipient = expectedRecipient
	v.gotSender = expectedSender
	if v.err != nil {
		return payment.Transfer{}, v.err
	}
	return v.transfer, nil
}

type fakeJobNotifier struct {
	posted []job.Job
}

func (n *fakeJobNotifier) JobPosted(j job.Job) {
	n.posted = append(n.posted, j)
}

type fakeApplicationNotifier struct {
	ownerIDs  []uuid.UUID
	jobTitles []string
}

func (n *fakeApplicationNotifier) ApplicationReceived(ownerID uuid.UUID, _ application.Application, jobTitle string) {
	n.ownerIDs = append(n.ownerIDs, ownerID)
	n.jobTitles = append(n.jobTitles, jobTitle)
}

type fakeExtractor struct {
	terms []string
	err   error
}

func (e *fakeExtractor) ExtractCandidateTerms(_ context.Context, _ string) ([]string, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.terms, nil
}

type fakeCache struct {
	entries map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deleted = append(c.deleted, pattern)
	return nil
}

type fakeResumeSaver struct {
	url string
	err error
}

func (s *fakeResumeSaver) Save(_ context.Context, _ uuid.UUID, _ string, _ io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}
