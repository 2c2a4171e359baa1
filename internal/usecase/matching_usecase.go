package usecase

import (
	"context"
	"errors"
	"time"

	"connectus/internal/domain/job"
	"connectus/internal/domain/matching"
	"connectus/internal/domain/user"
	"connectus/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const matchScoreTTL = 10 * time.Minute

// MatchScoreCache is the slice of the cache the matching flow needs. The
// redis-backed implementation degrades to a no-op when the server is down.
type MatchScoreCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.Result, error)
}

type Matching struct {
	users  user.Repository
	jobs   repository.JobRepository
	cache  MatchScoreCache
	logger *zap.Logger
}

func NewMatchingUsecase(users user.Repository, jobs repository.JobRepository, cache MatchScoreCache, logger *zap.Logger) *Matching {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{users: users, jobs: jobs, cache: cache, logger: logger}
}

// CalculateMatch scores the user's skills against a job's requirements.
// Results are cached per user and job; profile updates invalidate the
// user's entries.
func (u *Matching) CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.Result, error) {
	key := matchCacheKey(userID, jobID)
	if u.cache != nil {
		var cached matching.Result
		if found, err := u.cache.GetJSON(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return matching.Result{}, ErrUserNotFound
		}
		return matching.Result{}, ErrInternal
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return matching.Result{}, ErrJobNotFound
		}
		return matching.Result{}, ErrInternal
	}

	result := matching.Score(usr.Skills, j.Skills)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, matchScoreTTL); err != nil {
			u.logger.Debug("match score cache write failed", zap.Error(err))
		}
	}
	return result, nil
}

func matchCacheKey(userID, jobID uuid.UUID) string {
	return "match:" + userID.String() + ":" + jobID.String()
}
