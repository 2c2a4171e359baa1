package usecase

import (
	"context"
	"errors"
	"strings"

	"connectus/internal/domain/payment"
	"connectus/internal/domain/skills"
	"connectus/internal/domain/user"
	"connectus/internal/infrastructure/nlp"
	"connectus/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UpdateProfileInput struct {
	Bio                 *string
	Skills              []string
	LinkedIn            *string
	Phone               *string
	PublicWalletAddress *string
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
	PaymentHistory(ctx context.Context, userID uuid.UUID) ([]payment.Payment, error)
	ExtractSkills(ctx context.Context, text string) ([]string, error)
}

type User struct {
	users     user.Repository
	payments  repository.PaymentRepository
	extractor nlp.TermExtractor
	cache     MatchScoreCache
	logger    *zap.Logger
}

func NewUserUsecase(users user.Repository, payments repository.PaymentRepository, extractor nlp.TermExtractor, cache MatchScoreCache, logger *zap.Logger) *User {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &User{users: users, payments: payments, extractor: extractor, cache: cache, logger: logger}
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

// UpdateProfile applies the provided fields. When a bio is supplied, skills
// mentioned in it are extracted and merged with the explicit skill list, the
// same enrichment the original profile editor performs.
func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	if in.Bio == nil && in.Skills == nil && in.LinkedIn == nil && in.Phone == nil && in.PublicWalletAddress == nil {
		return user.User{}, ErrInvalidInput
	}

	fields := user.UpdateProfileFields{
		Bio:                 in.Bio,
		LinkedIn:            in.LinkedIn,
		Phone:               in.Phone,
		PublicWalletAddress: in.PublicWalletAddress,
	}

	explicit := cleanSkillList(in.Skills)
	switch {
	case in.Bio != nil && strings.TrimSpace(*in.Bio) != "":
		fields.Skills = mergeSkills(explicit, u.skillsFromBio(ctx, *in.Bio))
	case in.Skills != nil:
		fields.Skills = explicit
	}

	usr, err := u.users.UpdateProfile(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	// Skill or wallet changes invalidate previously computed match scores.
	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, "match:"+userID.String()+":*")
	}

	usr.PasswordHash = ""
	return usr, nil
}

func (u *User) PaymentHistory(ctx context.Context, userID uuid.UUID) ([]payment.Payment, error) {
	payments, err := u.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return payments, nil
}

// ExtractSkills runs the NLP heuristic over arbitrary text and keeps only
// candidates in the known skill vocabulary.
func (u *User) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}
	if u.extractor == nil {
		return []string{}, nil
	}

	terms, err := u.extractor.ExtractCandidateTerms(ctx, text)
	if err != nil {
		return nil, ErrInternal
	}

	return filterAllowedTerms(terms), nil
}

func (u *User) skillsFromBio(ctx context.Context, bio string) []string {
	if u.extractor == nil {
		return nil
	}
	terms, err := u.extractor.ExtractCandidateTerms(ctx, bio)
	if err != nil {
		// Extraction is enrichment only; a failed pass must not block the
		// profile update.
		u.logger.Warn("bio skill extraction failed", zap.Error(err))
		return nil
	}
	return filterAllowedTerms(terms)
}

func filterAllowedTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		canonical := skills.Normalize(t)
		if canonical == "" || !skills.AllowedExtractionTerms[canonical] || seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	return out
}

func cleanSkillList(raw []string) []string {
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// mergeSkills unions explicit skills with extracted ones, deduplicating by
// canonical id. Explicit entries win and keep their surface form.
func mergeSkills(explicit, extracted []string) []string {
	seen := make(map[string]bool, len(explicit)+len(extracted))
	out := make([]string, 0, len(explicit)+len(extracted))
	for _, s := range explicit {
		key := skills.Normalize(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	for _, s := range extracted {
		key := skills.Normalize(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
