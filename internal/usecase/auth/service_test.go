package auth

import (
	"context"
	"errors"
	"testing"

	"connectus/internal/domain/user"

	"github.com/google/uuid"
)

type stubUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User

	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, _ user.UpdateProfileFields) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func TestRegisterCreatesUserWithHashedPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Errorf("Email = %q, want lowercased", u.Email)
	}
	if u.PasswordHash != "" {
		t.Errorf("PasswordHash returned to caller")
	}

	stored := repo.byID[u.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "correct horse" {
		t.Errorf("stored password not hashed: %q", stored.PasswordHash)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      RegisterInput
		wantErr error
	}{
		{"empty name", RegisterInput{Email: "a@b.com", Password: "longenough"}, ErrInvalidInput},
		{"bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "longenough"}, ErrInvalidInput},
		{"short password", RegisterInput{Name: "A", Email: "a@b.com", Password: "short"}, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newStubUserRepo())
			if _, err := svc.Register(context.Background(), tt.in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newStubUserRepo())
	in := RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "longenough"}

	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("second Register() error = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "ADA@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Errorf("Email = %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Errorf("PasswordHash leaked from Login")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "correct horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}
